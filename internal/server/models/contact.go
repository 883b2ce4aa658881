package models

import "time"

// EmergencyContact belongs to exactly one user and lives in an ordered
// per-user sequence. Insertion order is display and deletion order; the
// positional index is not stable across deletions.
type EmergencyContact struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Relationship string    `json:"relationship"`
	AddedAt      time.Time `json:"added_at"`
}
