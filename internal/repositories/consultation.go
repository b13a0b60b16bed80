package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
)

// ConsultationMemoryRepository keeps consultation requests in memory for the
// lifetime of the process. Records are append-only.
type ConsultationMemoryRepository struct {
	mu      sync.RWMutex
	lastID  atomic.Int64
	byID    map[int64]*models.ConsultationRequest
	ordered []*models.ConsultationRequest
	now     func() time.Time
}

// NewConsultationMemoryRepository creates an empty repository.
func NewConsultationMemoryRepository() *ConsultationMemoryRepository {
	return &ConsultationMemoryRepository{
		byID: make(map[int64]*models.ConsultationRequest),
		now:  time.Now,
	}
}

// Save assigns the next id and creation time and stores the request.
func (r *ConsultationMemoryRepository) Save(ctx context.Context, input models.ConsultationRequestInput) (*models.ConsultationRequest, error) {
	var message *string
	if input.Message != nil && *input.Message != "" {
		m := *input.Message
		message = &m
	}

	r.mu.Lock()
	req := &models.ConsultationRequest{
		ID:              r.lastID.Add(1),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Company:         input.Company,
		ServiceInterest: input.ServiceInterest,
		Message:         message,
		CreatedAt:       r.now(),
	}
	r.byID[req.ID] = req
	r.ordered = append(r.ordered, req)
	total := len(r.ordered)
	r.mu.Unlock()

	logger.Log.Debugw("consultation request stored", "id", req.ID, "total", total)

	return clone(req), nil
}

// GetByID returns the request with the given id, or nil when absent.
func (r *ConsultationMemoryRepository) GetByID(ctx context.Context, id int64) (*models.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return clone(req), nil
}

// List returns all stored requests in insertion order.
func (r *ConsultationMemoryRepository) List(ctx context.Context) ([]models.ConsultationRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ConsultationRequest, 0, len(r.ordered))
	for _, req := range r.ordered {
		out = append(out, *clone(req))
	}
	return out, nil
}

// clone copies a record so callers cannot reach stored state.
func clone(req *models.ConsultationRequest) *models.ConsultationRequest {
	c := *req
	if req.Message != nil {
		m := *req.Message
		c.Message = &m
	}
	return &c
}
