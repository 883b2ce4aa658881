package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/dbx"
	"github.com/knightride/knightride/internal/server/models"
)

// PostgresRepository stores contacts ordered by (added_at, id); the
// positional contract maps an index onto that ordering.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Init(ctx context.Context, userEmail string) error {
	// Rows are the sequence; an absent user simply has no rows.
	return nil
}

func (r *PostgresRepository) Add(ctx context.Context, userEmail string, contact *models.EmergencyContact) error {

	query :=
		`INSERT INTO emergency_contacts (id, user_email, name, phone, relationship, added_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		contact.ID, userEmail, contact.Name, contact.Phone, contact.Relationship, contact.AddedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, userEmail string) ([]models.EmergencyContact, error) {
	query :=
		`SELECT id, name, phone, relationship, added_at FROM emergency_contacts
		 WHERE user_email = $1
		 ORDER BY added_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	contacts := []models.EmergencyContact{}
	for rows.Next() {
		var c models.EmergencyContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Relationship, &c.AddedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contacts, nil
}

func (r *PostgresRepository) DeleteAt(ctx context.Context, userEmail string, index int) (*models.EmergencyContact, error) {
	if index < 0 {
		return nil, common.ErrNotFound
	}

	deleted := &models.EmergencyContact{}

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query :=
			`SELECT id, name, phone, relationship, added_at FROM emergency_contacts
			 WHERE user_email = $1
			 ORDER BY added_at, id
			 OFFSET $2 LIMIT 1
			 FOR UPDATE
			 `

		err := tx.QueryRowContext(ctx, query, userEmail, index).Scan(
			&deleted.ID, &deleted.Name, &deleted.Phone, &deleted.Relationship, &deleted.AddedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return common.ErrNotFound
			}
			return fmt.Errorf("db error: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, deleted.ID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}
