package alerts

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
)

type Repository interface {
	// Create records a new SOS alert. Alerts are write-once; no query or
	// update operations exist in scope.
	Create(ctx context.Context, alert *models.SOSAlert) error
}
