package service

import (
	"context"
	"fmt"
	"time"

	"maestro/internal/apperr"
	"maestro/internal/logger"
	"maestro/internal/messaging"
	"maestro/internal/metrics"
	"maestro/internal/models"
)

type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]models.Booking, error)
}

type BookingService struct {
	bookings   BookingStore
	events     EventStore
	natsClient *messaging.NATSClient
	now        func() time.Time
}

func NewBookingService(bookings BookingStore, events EventStore, natsClient *messaging.NATSClient) *BookingService {
	return &BookingService{
		bookings:   bookings,
		events:     events,
		natsClient: natsClient,
		now:        time.Now,
	}
}

// Create books a ticket for an existing event. The booking date is always
// the server clock and the status always starts as Pending; any
// client-supplied values are ignored. No capacity or duplicate check is
// performed.
func (s *BookingService) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.Booking, error) {
	event, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event == nil {
		return nil, apperr.NotFound("event not found")
	}

	booking := &models.Booking{
		EventID:     req.EventID,
		UserID:      req.UserID,
		BookingDate: s.now().UTC(),
		Status:      models.BookingStatusPending,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	metrics.BookingsCreated.Inc()

	busEvent := models.BookingCreatedEvent{
		BookingID: booking.ID,
		EventID:   booking.EventID,
		UserID:    booking.UserID,
		Timestamp: s.now(),
	}
	if err := s.natsClient.Publish(models.SubjectBookingCreated, busEvent); err != nil {
		logger.WithContext(ctx).Error("Failed to publish booking created event",
			"error", err,
			"booking_id", booking.ID)
	}

	return booking, nil
}

// ListByUser returns the user's bookings with events attached. A user with
// no bookings gets an empty list, not an error.
func (s *BookingService) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
