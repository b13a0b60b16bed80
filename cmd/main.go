package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-career-consult/docs"
	"github.com/sbilibin2017/gw-career-consult/internal/facades"
	"github.com/sbilibin2017/gw-career-consult/internal/frontend"
	"github.com/sbilibin2017/gw-career-consult/internal/handlers"
	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/middlewares"
	"github.com/sbilibin2017/gw-career-consult/internal/repositories"
	"github.com/sbilibin2017/gw-career-consult/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const envDevelopment = "development"

// @title gw-career-consult API
// @version 1.0.0
// @description Consultation intake and AI career recommendations
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, appEnv,
		staticDir, devServerURL,
		geminiAPIKey, geminiModel,
		kafkaBrokers, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, appEnv,
		staticDir, devServerURL,
		geminiAPIKey, geminiModel,
		kafkaBrokers, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, frontend, AI provider, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, appEnv string,
	staticDir, devServerURL string,
	geminiAPIKey, geminiModel string,
	kafkaBrokers []string, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "0.0.0.0")
	appPort = getEnv("APP_PORT", "5000")
	if _, err = strconv.ParseUint(appPort, 10, 16); err != nil {
		err = fmt.Errorf("invalid APP_PORT %q: %w", appPort, err)
		return
	}
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	appEnv = getEnv("APP_ENV", "production")

	// Frontend config
	staticDir = getEnv("STATIC_DIR", "dist/public")
	devServerURL = getEnv("DEV_SERVER_URL", "")

	// AI provider config
	geminiAPIKey = getEnv("GEMINI_API_KEY", "")
	geminiModel = getEnv("GEMINI_MODEL", facades.DefaultGeminiModel)

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			kafkaBrokers = append(kafkaBrokers, b)
		}
	}
	kafkaTopic = getEnv("KAFKA_CONSULTATION_TOPIC", "consultation-requests")

	return
}

// run initializes the logger, storage, AI provider, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, appEnv string,
	staticDir, devServerURL string,
	geminiAPIKey, geminiModel string,
	kafkaBrokers []string, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize repositories
	consultationRepo := repositories.NewConsultationMemoryRepository()

	// Initialize AI provider
	if geminiAPIKey == "" {
		logger.Log.Warn("GEMINI_API_KEY is not set, career recommendations will fail")
	}
	gemini := facades.NewGeminiFacade(geminiAPIKey, geminiModel)
	logger.Log.Infow("AI provider configured", "model", gemini.Model())

	// Kafka is optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(kafkaBrokers...),
			Topic:        kafkaTopic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		}
		defer func() {
			if err := kw.Close(); err != nil {
				logger.Log.Errorw("failed to close kafka writer", "error", err)
			}
		}()
		kafkaWriter = kw
		logger.Log.Infow("publishing consultation events", "brokers", kafkaBrokers, "topic", kafkaTopic)
	}

	// Initialize services
	consultationService := services.NewConsultationService(consultationRepo, consultationRepo, kafkaWriter)
	recommendationService := services.NewRecommendationService(gemini)

	// Frontend
	site, err := newFrontend(appEnv, staticDir, devServerURL)
	if err != nil {
		logger.Log.Warnw("frontend disabled, serving API only", "error", err)
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", appHost, appPort)
	r := newRouter(consultationService, recommendationService, site)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newFrontend proxies to the dev server in development and serves the built
// client otherwise.
func newFrontend(appEnv, staticDir, devServerURL string) (http.Handler, error) {
	if appEnv == envDevelopment && devServerURL != "" {
		return frontend.NewDevProxy(devServerURL)
	}
	return frontend.NewStaticHandler(staticDir)
}

// newRouter builds the HTTP routes. site may be nil, in which case only the API is served.
func newRouter(
	consultations interface {
		handlers.ConsultationSubmitter
		handlers.ConsultationLister
	},
	recommendations handlers.RecommendationGenerator,
	site http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.RecoverMiddleware(logger.Log))
	r.Use(chimiddleware.StripSlashes)

	r.Route("/api", func(r chi.Router) {
		r.Post("/consultation", handlers.NewSubmitConsultationHandler(consultations))
		r.Get("/consultation", handlers.NewListConsultationsHandler(consultations))
		r.Post("/career-recommendations", handlers.NewCareerRecommendationsHandler(recommendations))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	if site != nil {
		r.Handle("/*", site)
	}

	return r
}
