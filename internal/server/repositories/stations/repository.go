package stations

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
)

type Repository interface {
	// List returns all stations, or only those whose type equals
	// typeFilter when it is non-empty. Exact match only; no geo ranking.
	List(ctx context.Context, typeFilter string) ([]models.ServiceStation, error)
	// GetByID returns the station with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.ServiceStation, error)
}
