package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

const (
	apiPrefix       = "/api"
	bodyLogLimit    = 80
	bodyCaptureSize = 4 << 10
)

// RequestIDFromContext returns the request id set by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggingMiddleware returns a middleware that logs one line per request using the provided SugaredLogger.
// It also generates a unique request ID for each HTTP request.
// Responses of /api routes are logged with a truncated copy of their body.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.New().String()
			start := time.Now()

			isAPI := strings.HasPrefix(r.URL.Path, apiPrefix)
			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				capture:        isAPI,
			}

			r = r.WithContext(context.WithValue(r.Context(), requestIDKey, reqID))
			w.Header().Set("X-Request-ID", reqID)

			next.ServeHTTP(rw, r)

			fields := []any{
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"status", rw.statusCode,
				"duration", time.Since(start),
				"response_size", strconv.Itoa(rw.size) + "B",
			}
			if isAPI && rw.body.Len() > 0 {
				fields = append(fields, "response", logger.TruncateForLog(rw.body.String(), bodyLogLimit))
			}
			log.Infow("request", fields...)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	size        int
	wroteHeader bool
	capture     bool
	body        bytes.Buffer
}

func (rw *responseWriter) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.wroteHeader = true
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	if rw.capture && rw.body.Len() < bodyCaptureSize {
		n := min(size, bodyCaptureSize-rw.body.Len())
		rw.body.Write(b[:n])
	}
	return size, err
}

// Committed reports whether the status line has been sent.
func (rw *responseWriter) Committed() bool {
	return rw.wroteHeader
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
