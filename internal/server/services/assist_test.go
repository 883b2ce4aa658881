package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightride/knightride/internal/common"
	"github.com/knightride/knightride/internal/server/models"
	"github.com/knightride/knightride/internal/server/repositories/alerts"
	"github.com/knightride/knightride/internal/server/repositories/contacts"
	"github.com/knightride/knightride/internal/server/repositories/requests"
	"github.com/knightride/knightride/internal/server/repositories/stations"
)

func newTestAssistService() (*AssistService, *ContactService) {
	contactRepo := contacts.NewInMemoryRepository()
	assist := NewAssistService(
		requests.NewInMemoryRepository(),
		alerts.NewInMemoryRepository(),
		stations.NewStaticRepository(),
		contactRepo,
	)
	return assist, NewContactService(contactRepo)
}

func TestAssistService_SubmitServiceRequest(t *testing.T) {
	s, _ := newTestAssistService()
	ctx := context.Background()
	loc := models.Location{Lat: 19.07, Lng: 72.87}

	req, err := s.SubmitServiceRequest(ctx, "a@x.com", "1", loc, "out of fuel", "fuel")
	require.NoError(t, err)
	assert.Equal(t, "Shell Petrol Pump", req.ServiceName, "station name is denormalized at creation")
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Equal(t, "a@x.com", req.UserEmail)
	assert.NotEmpty(t, req.ID)
}

func TestAssistService_SubmitServiceRequest_UnknownService(t *testing.T) {
	s, _ := newTestAssistService()

	_, err := s.SubmitServiceRequest(context.Background(), "a@x.com", "999",
		models.Location{}, "help", "fuel")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAssistService_SubmitSOS_SnapshotCount(t *testing.T) {
	s, cs := newTestAssistService()
	ctx := context.Background()

	// no contacts yet
	alert, err := s.SubmitSOS(ctx, "a@x.com", models.Location{Lat: 1, Lng: 2}, "crash")
	require.NoError(t, err)
	assert.Equal(t, 0, alert.ContactsNotified)
	assert.Equal(t, models.AlertStatusActive, alert.Status)

	for _, name := range []string{"Mom", "Dad", "Partner"} {
		_, err := cs.Add(ctx, "a@x.com", name, "+91 90000", "family")
		require.NoError(t, err)
	}

	alert, err = s.SubmitSOS(ctx, "a@x.com", models.Location{Lat: 1, Lng: 2}, "crash")
	require.NoError(t, err)
	assert.Equal(t, 3, alert.ContactsNotified)

	// count is scoped to the alerting user
	alert, err = s.SubmitSOS(ctx, "b@x.com", models.Location{}, "crash")
	require.NoError(t, err)
	assert.Equal(t, 0, alert.ContactsNotified)
}
