package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
	"github.com/knightride/knightride/internal/server/repositories/alerts"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/requests"
	"github.com/knightride/knightride/internal/server/repositories/stations"
)

// AssistService is the request ledger: it records service requests and SOS
// alerts. Both records are write-once; status transition logic is a future
// extension point, not inferred here.
type AssistService struct {
	requestRepo requests.Repository
	alertRepo   alerts.Repository
	stationRepo stations.Repository
	contactRepo contacts.Repository
}

func NewAssistService(requestRepo requests.Repository, alertRepo alerts.Repository,
	stationRepo stations.Repository, contactRepo contacts.Repository) *AssistService {
	return &AssistService{
		requestRepo: requestRepo,
		alertRepo:   alertRepo,
		stationRepo: stationRepo,
		contactRepo: contactRepo,
	}
}

// SubmitServiceRequest records a roadside-assistance request. The station
// must exist in the directory; its name is denormalized into the record at
// creation time. An unknown serviceID yields common.ErrNotFound.
func (s *AssistService) SubmitServiceRequest(ctx context.Context, userEmail, serviceID string,
	location models.Location, message, serviceType string) (*models.ServiceRequest, error) {

	station, err := s.stationRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}

	request := &models.ServiceRequest{
		ID:          uuid.NewString(),
		UserEmail:   userEmail,
		ServiceID:   serviceID,
		ServiceName: station.Name,
		Location:    location,
		Message:     message,
		ServiceType: serviceType,
		Status:      models.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, common.ErrInternal
	}

	return request, nil
}

// SubmitSOS records an emergency alert. ContactsNotified is a snapshot of
// the user's current contact count; no notification is actually delivered.
func (s *AssistService) SubmitSOS(ctx context.Context, userEmail string,
	location models.Location, message string) (*models.SOSAlert, error) {

	userContacts, err := s.contactRepo.List(ctx, userEmail)
	if err != nil {
		return nil, common.ErrInternal
	}

	alert := &models.SOSAlert{
		ID:               uuid.NewString(),
		UserEmail:        userEmail,
		Location:         location,
		Message:          message,
		ContactsNotified: len(userContacts),
		Status:           models.AlertStatusActive,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, common.ErrInternal
	}

	return alert, nil
}
