package service

import (
	"context"
	"strings"
	"time"

	"maestro/internal/models"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  map[string]models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

type fakeArtistStore struct {
	artists []models.Artist
	nextID  int64
}

func (f *fakeArtistStore) Create(_ context.Context, artist *models.Artist) error {
	f.nextID++
	artist.ID = f.nextID
	artist.CreatedAt = time.Now()
	f.artists = append(f.artists, *artist)
	return nil
}

func (f *fakeArtistStore) List(_ context.Context) ([]models.Artist, error) {
	return f.artists, nil
}

func (f *fakeArtistStore) GetByID(_ context.Context, id int64) (*models.Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			return &artist, nil
		}
	}
	return nil, nil
}

type fakeEventStore struct {
	events []models.Event
	nextID int64
}

func (f *fakeEventStore) Create(_ context.Context, event *models.Event) error {
	f.nextID++
	event.ID = f.nextID
	event.CreatedAt = time.Now()
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) List(_ context.Context) ([]models.Event, error) {
	return f.events, nil
}

func (f *fakeEventStore) GetByID(_ context.Context, id int64) (*models.Event, error) {
	for _, event := range f.events {
		if event.ID == id {
			return &event, nil
		}
	}
	return nil, nil
}

type fakeBookingStore struct {
	bookings []models.Booking
	events   *fakeEventStore
	nextID   int64
}

func (f *fakeBookingStore) Create(_ context.Context, booking *models.Booking) error {
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingStore) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var result []models.Booking
	for _, booking := range f.bookings {
		if booking.UserID != userID {
			continue
		}
		if f.events != nil {
			event, _ := f.events.GetByID(ctx, booking.EventID)
			booking.Event = event
		}
		result = append(result, booking)
	}
	return result, nil
}

type fakeEventIndex struct {
	indexed []models.Event
}

func (f *fakeEventIndex) Index(_ context.Context, event *models.Event) error {
	f.indexed = append(f.indexed, *event)
	return nil
}

func (f *fakeEventIndex) Search(_ context.Context, query string) ([]models.Event, error) {
	var result []models.Event
	for _, event := range f.indexed {
		if query == "" ||
			strings.Contains(strings.ToLower(event.Title), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(event.Venue), strings.ToLower(query)) {
			result = append(result, event)
		}
	}
	return result, nil
}
