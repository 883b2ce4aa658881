package requests

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
)

type Repository interface {
	// Create records a new service request. Requests are write-once; no
	// query or update operations exist in scope.
	Create(ctx context.Context, request *models.ServiceRequest) error
}
