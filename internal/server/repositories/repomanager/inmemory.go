package repomanager

import (
	"context"

	"github.com/knightride/knightride/internal/server/repositories/alerts"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/requests"
	"github.com/knightride/knightride/internal/server/repositories/stations"
	"github.com/knightride/knightride/internal/server/repositories/users"
)

// InMemoryRepositoryManager holds every store for the life of the process.
// This is the default backend when no database DSN is configured.
type InMemoryRepositoryManager struct {
	users    users.Repository
	contacts contacts.Repository
	requests requests.Repository
	alerts   alerts.Repository
	stations stations.Repository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		contacts: contacts.NewInMemoryRepository(),
		requests: requests.NewInMemoryRepository(),
		alerts:   alerts.NewInMemoryRepository(),
		stations: stations.NewStaticRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *InMemoryRepositoryManager) Contacts() contacts.Repository { return m.contacts }
func (m *InMemoryRepositoryManager) Requests() requests.Repository { return m.requests }
func (m *InMemoryRepositoryManager) Alerts() alerts.Repository     { return m.alerts }
func (m *InMemoryRepositoryManager) Stations() stations.Repository { return m.stations }

func (m *InMemoryRepositoryManager) Close() error { return nil }
