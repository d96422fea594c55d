package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maestro/internal/apperr"
	"maestro/internal/logger"
	"maestro/internal/messaging"
	"maestro/internal/models"
)

// ErrSearchUnavailable is returned when no search index is configured.
var ErrSearchUnavailable = errors.New("event search is not configured")

type EventStore interface {
	Create(ctx context.Context, event *models.Event) error
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
}

// EventIndex is the search backend for events. Satisfied by search.Client.
type EventIndex interface {
	Index(ctx context.Context, event *models.Event) error
	Search(ctx context.Context, query string) ([]models.Event, error)
}

type EventService struct {
	events     EventStore
	index      EventIndex
	natsClient *messaging.NATSClient
	now        func() time.Time
}

func NewEventService(events EventStore, index EventIndex, natsClient *messaging.NATSClient) *EventService {
	return &EventService{
		events:     events,
		index:      index,
		natsClient: natsClient,
		now:        time.Now,
	}
}

// Create schedules an event. The artist id is stored as given; whether it
// references an existing artist is not checked.
func (s *EventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if req.Date.Before(s.now().UTC()) {
		return nil, apperr.Validation("event date cannot be in the past")
	}

	event := &models.Event{
		ArtistID:    req.ArtistID,
		Title:       req.Title,
		Date:        req.Date,
		Venue:       req.Venue,
		TicketPrice: req.TicketPrice,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	if s.index != nil {
		if err := s.index.Index(ctx, event); err != nil {
			logger.WithContext(ctx).Error("Failed to index event",
				"error", err,
				"event_id", event.ID)
		}
	}

	busEvent := models.EventCreatedEvent{
		EventID:   event.ID,
		ArtistID:  event.ArtistID,
		Title:     event.Title,
		Date:      event.Date,
		Timestamp: s.now(),
	}
	if err := s.natsClient.Publish(models.SubjectEventCreated, busEvent); err != nil {
		logger.WithContext(ctx).Error("Failed to publish event created event",
			"error", err,
			"event_id", event.ID)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (s *EventService) Search(ctx context.Context, query string) ([]models.Event, error) {
	if s.index == nil {
		return nil, ErrSearchUnavailable
	}

	events, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
