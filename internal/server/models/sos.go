package models

import "time"

// AlertStatus is the lifecycle state of an SOS alert. Alerts are created
// active; no transition API exists yet.
type AlertStatus string

const (
	AlertStatusActive AlertStatus = "active"
)

// SOSAlert records an emergency alert. ContactsNotified is a snapshot of
// the user's emergency-contact count at creation time; no outbound
// notification is actually sent.
type SOSAlert struct {
	ID               string      `json:"id"`
	UserEmail        string      `json:"user_email"`
	Location         Location    `json:"location"`
	Message          string      `json:"message"`
	ContactsNotified int         `json:"contacts_notified"`
	Status           AlertStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}
