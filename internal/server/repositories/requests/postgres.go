package requests

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

func (r *PostgresRepository) Create(ctx context.Context, request *models.ServiceRequest) error {

	query :=
		`INSERT INTO service_requests
		   (id, user_email, service_id, service_name, lat, lng, message, service_type, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 `

	_, err := r.db.ExecContext(ctx, query,
		request.ID, request.UserEmail, request.ServiceID, request.ServiceName,
		request.Location.Lat, request.Location.Lng, request.Message,
		request.ServiceType, string(request.Status), request.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
