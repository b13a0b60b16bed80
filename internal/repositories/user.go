package repositories

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
)

// UserMemoryRepository keeps users in memory. Username uniqueness is not
// enforced here.
type UserMemoryRepository struct {
	mu     sync.RWMutex
	lastID atomic.Int64
	users  map[int64]models.User
}

// NewUserMemoryRepository creates an empty repository.
func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[int64]models.User)}
}

// Save assigns the next id and stores the user.
func (r *UserMemoryRepository) Save(ctx context.Context, username, password string) (*models.User, error) {
	r.mu.Lock()
	user := models.User{
		ID:       r.lastID.Add(1),
		Username: username,
		Password: password,
	}
	r.users[user.ID] = user
	r.mu.Unlock()

	logger.Log.Debugw("user stored", "id", user.ID, "username", username)

	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserMemoryRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetByUsername returns the first user with the given username, or nil when absent.
func (r *UserMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.User
	for id, user := range r.users {
		if user.Username != username {
			continue
		}
		if found == nil || id < found.ID {
			u := user
			found = &u
		}
	}
	return found, nil
}
