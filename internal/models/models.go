package models

import "time"

// SignupRequest - request body for POST /api/auth/signup
type SignupRequest struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	MiddleName  string `json:"middleName"`
	Password    string `json:"password"`
}

// SignupResponse - response body for a successful signup
type SignupResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}

// LoginRequest - request body for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse - response body for a successful login
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateArtistRequest - request body for POST /api/artists
type CreateArtistRequest struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Bio   string `json:"bio"`
	Email string `json:"email"`
}

// CreateEventRequest - request body for POST /api/events
type CreateEventRequest struct {
	ArtistID    int64     `json:"artistId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	TicketPrice float64   `json:"ticketPrice"`
}

// CreateBookingRequest - request body for POST /api/bookings.
// BookingDate is accepted on the wire but always overwritten with the
// server clock.
type CreateBookingRequest struct {
	EventID     int64      `json:"eventId"`
	UserID      int64      `json:"userId"`
	BookingDate *time.Time `json:"bookingDate,omitempty"`
}
