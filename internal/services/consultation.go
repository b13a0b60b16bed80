package services

//go:generate mockgen -source=consultation.go -destination=consultation_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/segmentio/kafka-go"
)

// ConsultationSubmittedEventType is the type of the event published after a
// consultation request is stored.
const ConsultationSubmittedEventType = "consultation.submitted"

// ConsultationWriter stores consultation requests.
type ConsultationWriter interface {
	Save(ctx context.Context, input models.ConsultationRequestInput) (*models.ConsultationRequest, error) // Assigns id and createdAt
}

// ConsultationReader lists consultation requests.
type ConsultationReader interface {
	List(ctx context.Context) ([]models.ConsultationRequest, error) // Returns requests in insertion order
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ConsultationService handles consultation intake and event publishing.
type ConsultationService struct {
	writer      ConsultationWriter
	reader      ConsultationReader
	kafkaWriter KafkaWriter
}

// NewConsultationService creates a new ConsultationService.
// kafkaWriter may be nil, in which case no events are published.
func NewConsultationService(
	writer ConsultationWriter,
	reader ConsultationReader,
	kafkaWriter KafkaWriter,
) *ConsultationService {
	return &ConsultationService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
	}
}

// Submit stores a validated consultation request and publishes an event for it.
func (s *ConsultationService) Submit(ctx context.Context, input models.ConsultationRequestInput) (*models.ConsultationRequest, error) {
	req, err := s.writer.Save(ctx, input)
	if err != nil {
		logger.Log.Errorw("failed to save consultation request", "error", err)
		return nil, err
	}

	logger.Log.Infow("new consultation request",
		"id", req.ID,
		"company", req.Company,
		"service_interest", req.ServiceInterest,
		"created_at", req.CreatedAt,
	)

	s.publishSubmitted(ctx, *req)

	return req, nil
}

// List returns every stored consultation request in insertion order.
func (s *ConsultationService) List(ctx context.Context) ([]models.ConsultationRequest, error) {
	requests, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list consultation requests", "error", err)
		return nil, err
	}
	return requests, nil
}

// publishSubmitted publishes a consultation.submitted event. Failures are logged only.
func (s *ConsultationService) publishSubmitted(ctx context.Context, req models.ConsultationRequest) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "id", req.ID)
		return
	}

	data, err := json.Marshal(models.ConsultationSubmittedEvent{
		Type:      ConsultationSubmittedEventType,
		Request:   req,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		logger.Log.Errorw("Failed to marshal consultation event for Kafka", "id", req.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(req.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish consultation event to Kafka", "id", req.ID, "error", err)
	} else {
		logger.Log.Infow("Consultation event published to Kafka", "id", req.ID)
	}
}
