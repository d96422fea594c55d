package models

import (
	"time"
)

// Booking lifecycle status. Only Pending is ever assigned.
const BookingStatusPending = "Pending"

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	MiddleName   string    `json:"middleName" db:"middle_name"`
	PhoneNumber  string    `json:"phoneNumber" db:"phone_number"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Artist represents a performer that owns events
type Artist struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Genre     string    `json:"genre" db:"genre"`
	Bio       string    `json:"bio" db:"bio"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Event represents a scheduled performance by an artist
type Event struct {
	ID          int64     `json:"id" db:"id"`
	ArtistID    int64     `json:"artistId" db:"artist_id"`
	Artist      *Artist   `json:"artist,omitempty"` // Not from the events table, joined separately
	Title       string    `json:"title" db:"title"`
	Date        time.Time `json:"date" db:"date"`
	Venue       string    `json:"venue" db:"venue"`
	TicketPrice float64   `json:"ticketPrice" db:"ticket_price"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Booking represents a ticket booking for an event
type Booking struct {
	ID          int64     `json:"id" db:"id"`
	EventID     int64     `json:"eventId" db:"event_id"`
	Event       *Event    `json:"event,omitempty"` // Not from the bookings table, joined separately
	UserID      int64     `json:"userId" db:"user_id"`
	BookingDate time.Time `json:"bookingDate" db:"booking_date"`
	Status      string    `json:"status" db:"status"`
}
