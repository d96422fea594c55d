package service

import (
	"context"
	"testing"
	"time"

	"maestro/internal/apperr"
	"maestro/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvent(t *testing.T, events *fakeEventStore) *models.Event {
	t.Helper()
	event := &models.Event{
		ArtistID: 1,
		Title:    "Concert",
		Date:     time.Now().UTC().Add(24 * time.Hour),
	}
	require.NoError(t, events.Create(context.Background(), event))
	return event
}

func TestCreateBookingEventNotFound(t *testing.T) {
	events := &fakeEventStore{}
	bookings := &fakeBookingStore{events: events}
	svc := NewBookingService(bookings, events, nil)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{EventID: 42, UserID: 1})
	assert.True(t, apperr.IsNotFound(err))
	assert.EqualError(t, err, "event not found")
	assert.Empty(t, bookings.bookings, "no booking should be persisted")
}

func TestCreateBookingServerAssignsDateAndStatus(t *testing.T) {
	events := &fakeEventStore{}
	bookings := &fakeBookingStore{events: events}
	svc := NewBookingService(bookings, events, nil)

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	event := seedEvent(t, events)

	clientDate := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	booking, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		EventID:     event.ID,
		UserID:      42,
		BookingDate: &clientDate, // must be ignored
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, now, booking.BookingDate)
	assert.Equal(t, int64(42), booking.UserID)
}

func TestListBookingsByUser(t *testing.T) {
	events := &fakeEventStore{}
	bookings := &fakeBookingStore{events: events}
	svc := NewBookingService(bookings, events, nil)

	event := seedEvent(t, events)

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{EventID: event.ID, UserID: 42})
	require.NoError(t, err)

	result, err := svc.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, event.ID, result[0].EventID)
	require.NotNil(t, result[0].Event, "event should be attached")
	assert.Equal(t, "Concert", result[0].Event.Title)
}

func TestListBookingsByUserEmpty(t *testing.T) {
	events := &fakeEventStore{}
	bookings := &fakeBookingStore{events: events}
	svc := NewBookingService(bookings, events, nil)

	result, err := svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCreateBookingNoCapacityLimit(t *testing.T) {
	events := &fakeEventStore{}
	bookings := &fakeBookingStore{events: events}
	svc := NewBookingService(bookings, events, nil)

	event := seedEvent(t, events)

	// Any number of bookings may target the same event
	for i := 0; i < 5; i++ {
		_, err := svc.Create(context.Background(), &models.CreateBookingRequest{EventID: event.ID, UserID: 42})
		require.NoError(t, err)
	}
	assert.Len(t, bookings.bookings, 5)
}
