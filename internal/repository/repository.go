package repository

import (
	"maestro/internal/database"
)

type Repositories struct {
	Users    *UserRepository
	Artists  *ArtistRepository
	Events   *EventRepository
	Bookings *BookingRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Artists:  NewArtistRepository(db),
		Events:   NewEventRepository(db),
		Bookings: NewBookingRepository(db),
	}
}
