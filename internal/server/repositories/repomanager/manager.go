// Package repomanager wires together the repository implementations for a
// chosen storage backend. The rest of the server only ever sees the
// RepositoryManager interface, so backends can be swapped without touching
// services or handlers.
package repomanager

import (
	"context"

	"github.com/knightride/knightride/internal/server/repositories/alerts"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/requests"
	"github.com/knightride/knightride/internal/server/repositories/stations"
	"github.com/knightride/knightride/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Contacts() contacts.Repository
	Requests() requests.Repository
	Alerts() alerts.Repository
	Stations() stations.Repository
	Close() error
}
