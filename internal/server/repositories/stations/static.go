package stations

import (
	"context"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
)

// seed is the fixed station directory, loaded at process start. The
// directory is read-only, so no locking is needed.
var seed = []models.ServiceStation{
	{
		ID:       "1",
		Name:     "Shell Petrol Pump",
		Type:     models.StationTypeFuel,
		Location: models.Location{Lat: 19.0760, Lng: 72.8777},
		Address:  "Bandra West, Mumbai",
		Rating:   4.5,
		IsOpen:   true,
		Phone:    "+91 9876543210",
	},
	{
		ID:       "2",
		Name:     "HP Fuel Station",
		Type:     models.StationTypeFuel,
		Location: models.Location{Lat: 19.0896, Lng: 72.8656},
		Address:  "Andheri West, Mumbai",
		Rating:   4.2,
		IsOpen:   true,
		Phone:    "+91 9876543211",
	},
	{
		ID:       "3",
		Name:     "Royal Enfield Service Center",
		Type:     models.StationTypeGarage,
		Location: models.Location{Lat: 19.0728, Lng: 72.8826},
		Address:  "Kurla West, Mumbai",
		Rating:   4.8,
		IsOpen:   true,
		Phone:    "+91 9876543212",
	},
	{
		ID:       "4",
		Name:     "Bajaj Authorized Service",
		Type:     models.StationTypeGarage,
		Location: models.Location{Lat: 19.0825, Lng: 72.8428},
		Address:  "Goregaon East, Mumbai",
		Rating:   4.3,
		IsOpen:   true,
		Phone:    "+91 9876543213",
	},
}

// StaticRepository serves the seeded, immutable station directory. Both
// storage backends share it since stations have no mutation operations.
type StaticRepository struct {
	stations []models.ServiceStation
}

func NewStaticRepository() *StaticRepository {
	return &StaticRepository{stations: seed}
}

func (r *StaticRepository) List(ctx context.Context, typeFilter string) ([]models.ServiceStation, error) {
	if typeFilter == "" {
		out := make([]models.ServiceStation, len(r.stations))
		copy(out, r.stations)
		return out, nil
	}

	out := []models.ServiceStation{}
	for _, s := range r.stations {
		if string(s.Type) == typeFilter {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *StaticRepository) GetByID(ctx context.Context, id string) (*models.ServiceStation, error) {
	for _, s := range r.stations {
		if s.ID == id {
			found := s
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}
