package models

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StationType classifies a service station.
type StationType string

const (
	StationTypeFuel   StationType = "fuel"
	StationTypeGarage StationType = "garage"
)

// ServiceStation is a static directory entry, seeded at process start.
// There are no mutation operations.
type ServiceStation struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     StationType `json:"type"`
	Location Location    `json:"location"`
	Address  string      `json:"address"`
	Rating   float64     `json:"rating"`
	IsOpen   bool        `json:"is_open"`
	Phone    string      `json:"phone"`
}
