package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/knightride/knightride/internal/server/migrations"
	"github.com/knightride/knightride/internal/server/repositories/alerts"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/requests"
	"github.com/knightride/knightride/internal/server/repositories/stations"
	"github.com/knightride/knightride/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and runs
// schema migrations via goose. The station directory stays static: it has
// no mutation operations, so it never touches the database.
type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	contacts contacts.Repository
	requests requests.Repository
	alerts   alerts.Repository
	stations stations.Repository
}

func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		contacts: contacts.NewPostgresRepository(db),
		requests: requests.NewPostgresRepository(db),
		alerts:   alerts.NewPostgresRepository(db),
		stations: stations.NewStaticRepository(),
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func (m *PostgresRepositoryManager) Users() users.Repository       { return m.users }
func (m *PostgresRepositoryManager) Contacts() contacts.Repository { return m.contacts }
func (m *PostgresRepositoryManager) Requests() requests.Repository { return m.requests }
func (m *PostgresRepositoryManager) Alerts() alerts.Repository     { return m.alerts }
func (m *PostgresRepositoryManager) Stations() stations.Repository { return m.stations }

func (m *PostgresRepositoryManager) Close() error { return m.db.Close() }
