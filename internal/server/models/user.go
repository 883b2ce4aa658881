package models

import "time"

// User is an account record, keyed by email. Immutable after registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	BikeModel    string    `json:"bike_model"`
	CreatedAt    time.Time `json:"created_at"`
}
