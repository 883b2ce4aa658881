package users

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
)

type Repository interface {
	// Create stores a new user. Returns common.ErrEmailTaken if the email
	// is already registered.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByEmail returns the user keyed by email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
