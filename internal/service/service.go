package service

import (
	"maestro/internal/messaging"
	"maestro/internal/repository"
	"maestro/internal/token"
)

type Services struct {
	Auth     *AuthService
	Artists  *ArtistService
	Events   *EventService
	Bookings *BookingService
}

// NewServices wires the services to their Postgres repositories. idx may be
// nil when no Elasticsearch is configured, natsClient may be nil when no
// NATS is configured.
func NewServices(repos *repository.Repositories, tokens *token.Manager, natsClient *messaging.NATSClient, idx EventIndex) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, tokens, natsClient),
		Artists:  NewArtistService(repos.Artists),
		Events:   NewEventService(repos.Events, idx, natsClient),
		Bookings: NewBookingService(repos.Bookings, repos.Events, natsClient),
	}
}
