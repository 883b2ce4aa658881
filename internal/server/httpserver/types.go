package httpserver

import "github.com/knightride/knightride/internal/server/models"

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	BikeModel string `json:"bike_model"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
}

type serviceRequestBody struct {
	ServiceID   string          `json:"service_id"`
	Location    models.Location `json:"location"`
	Message     string          `json:"message"`
	ServiceType string          `json:"service_type"`
}

type serviceRequestResponse struct {
	RequestID        string `json:"request_id"`
	Status           string `json:"status"`
	Message          string `json:"message"`
	EstimatedArrival string `json:"estimated_arrival"`
}

type sosRequestBody struct {
	Location models.Location `json:"location"`
	Message  string          `json:"message"`
}

type sosResponse struct {
	SOSID            string `json:"sos_id"`
	Status           string `json:"status"`
	ContactsNotified int    `json:"contacts_notified"`
	Message          string `json:"message"`
}

type contactRequestBody struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}
