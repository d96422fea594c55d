package models

import "time"

// NATS subjects
const (
	SubjectUserRegistered = "user.registered"
	SubjectEventCreated   = "event.created"
	SubjectBookingCreated = "booking.created"
)

// UserRegisteredEvent is published after a successful signup
type UserRegisteredEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// EventCreatedEvent is published after an event is scheduled
type EventCreatedEvent struct {
	EventID   int64     `json:"event_id"`
	ArtistID  int64     `json:"artist_id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCreatedEvent is published after a booking is created
type BookingCreatedEvent struct {
	BookingID int64     `json:"booking_id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
