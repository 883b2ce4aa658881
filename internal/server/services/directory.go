package services

import (
	"context"

	"github.com/knightride/knightride/internal/server/models"
	"github.com/knightride/knightride/internal/server/repositories/stations"
)

// DirectoryService exposes the static station directory. Filtering is an
// exact type match; the lat/lng fields carry no ranking semantics here.
type DirectoryService struct {
	repo stations.Repository
}

func NewDirectoryService(repo stations.Repository) *DirectoryService {
	return &DirectoryService{repo: repo}
}

// ListNearby returns all seeded stations, optionally restricted to the
// given station type. An unknown type yields an empty sequence.
func (s *DirectoryService) ListNearby(ctx context.Context, typeFilter string) ([]models.ServiceStation, error) {
	return s.repo.List(ctx, typeFilter)
}
