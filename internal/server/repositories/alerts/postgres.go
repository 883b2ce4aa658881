package alerts

import (
	"context"
	"fmt"

	"github.com/knightride/knightride/internal/dbx"
	"github.com/knightride/knightride/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, alert *models.SOSAlert) error {

	query :=
		`INSERT INTO sos_alerts
		   (id, user_email, lat, lng, message, contacts_notified, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		alert.ID, alert.UserEmail, alert.Location.Lat, alert.Location.Lng,
		alert.Message, alert.ContactsNotified, string(alert.Status), alert.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
