package requests

import (
	"context"
	"sync"

	"github.com/knightride/knightride/internal/server/models"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	requests map[string]models.ServiceRequest
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{requests: make(map[string]models.ServiceRequest)}
}

func (r *InMemoryRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests[request.ID] = *request
	return nil
}
