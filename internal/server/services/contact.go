package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/knightride/knightride/internal/server/models"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
)

// ContactService manages a user's ordered emergency-contact sequence.
// Deletion is positional: the index refers to the current sequence and is
// not stable across deletions.
type ContactService struct {
	repo contacts.Repository
}

func NewContactService(repo contacts.Repository) *ContactService {
	return &ContactService{repo: repo}
}

// Add appends a contact with a fresh id and timestamp to the user's sequence.
func (s *ContactService) Add(ctx context.Context, userEmail, name, phone, relationship string) (*models.EmergencyContact, error) {
	contact := &models.EmergencyContact{
		ID:           uuid.NewString(),
		Name:         name,
		Phone:        phone,
		Relationship: relationship,
		AddedAt:      time.Now().UTC(),
	}

	if err := s.repo.Add(ctx, userEmail, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// List returns the user's contacts in insertion order.
func (s *ContactService) List(ctx context.Context, userEmail string) ([]models.EmergencyContact, error) {
	return s.repo.List(ctx, userEmail)
}

// DeleteAt removes and returns the contact at the given position. Indices
// outside the current bounds yield common.ErrNotFound.
func (s *ContactService) DeleteAt(ctx context.Context, userEmail string, index int) (*models.EmergencyContact, error) {
	return s.repo.DeleteAt(ctx, userEmail, index)
}
