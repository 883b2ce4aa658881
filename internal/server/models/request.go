package models

import "time"

// RequestStatus is the lifecycle state of a service request. Requests are
// created as pending; no transition API exists yet.
type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
)

// ServiceRequest records a roadside-assistance request against a user and a
// station. The station name is denormalized at creation time.
type ServiceRequest struct {
	ID          string        `json:"id"`
	UserEmail   string        `json:"user_email"`
	ServiceID   string        `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Location    Location      `json:"location"`
	Message     string        `json:"message"`
	ServiceType string        `json:"service_type"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
