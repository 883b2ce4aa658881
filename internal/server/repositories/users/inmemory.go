package users

import (
	"context"
	"sync"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
)

// InMemoryRepository keeps user records in a map keyed by email. All access
// is serialized with a mutex so concurrent register/login requests cannot
// race on the check-then-insert.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]models.User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, common.ErrEmailTaken
	}

	r.users[user.Email] = *user
	created := *user
	return &created, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	found := user
	return &found, nil
}
