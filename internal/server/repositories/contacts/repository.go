package contacts

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
)

type Repository interface {
	// Init ensures the user has an (empty) contact sequence. Called once
	// at registration.
	Init(ctx context.Context, userEmail string) error
	// Add appends a contact to the user's ordered sequence.
	Add(ctx context.Context, userEmail string, contact *models.EmergencyContact) error
	// List returns the user's contacts in insertion order.
	List(ctx context.Context, userEmail string) ([]models.EmergencyContact, error)
	// DeleteAt removes the contact at the given position in the current
	// sequence and returns it. Indices outside [0, len) yield
	// common.ErrNotFound and leave the sequence unchanged.
	DeleteAt(ctx context.Context, userEmail string, index int) (*models.EmergencyContact, error)
}
