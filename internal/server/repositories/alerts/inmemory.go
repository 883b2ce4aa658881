package alerts

import (
	"context"
	"sync"

	"github.com/knightride/knightride/internal/server/models"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	alerts map[string]models.SOSAlert
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{alerts: make(map[string]models.SOSAlert)}
}

func (r *InMemoryRepository) Create(ctx context.Context, alert *models.SOSAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.alerts[alert.ID] = *alert
	return nil
}
