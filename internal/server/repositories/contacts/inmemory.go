package contacts

import (
	"context"
	"sync"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
)

// InMemoryRepository keeps per-user contact sequences in a map keyed by
// email. A single mutex serializes the index-then-delete so positional
// deletes cannot race with concurrent appends.
type InMemoryRepository struct {
	mu       sync.RWMutex
	contacts map[string][]models.EmergencyContact
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{contacts: make(map[string][]models.EmergencyContact)}
}

func (r *InMemoryRepository) Init(ctx context.Context, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[userEmail]; !ok {
		r.contacts[userEmail] = []models.EmergencyContact{}
	}
	return nil
}

func (r *InMemoryRepository) Add(ctx context.Context, userEmail string, contact *models.EmergencyContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts[userEmail] = append(r.contacts[userEmail], *contact)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, userEmail string) ([]models.EmergencyContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seq := r.contacts[userEmail]
	out := make([]models.EmergencyContact, len(seq))
	copy(out, seq)
	return out, nil
}

func (r *InMemoryRepository) DeleteAt(ctx context.Context, userEmail string, index int) (*models.EmergencyContact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seq := r.contacts[userEmail]
	if index < 0 || index >= len(seq) {
		return nil, common.ErrNotFound
	}

	deleted := seq[index]
	r.contacts[userEmail] = append(seq[:index], seq[index+1:]...)
	return &deleted, nil
}
