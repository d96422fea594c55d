package repository

import (
	"context"

	"maestro/internal/database"
	"maestro/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	query := `
		INSERT INTO bookings (event_id, user_id, booking_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		booking.EventID,
		booking.UserID,
		booking.BookingDate,
		booking.Status,
	).Scan(&booking.ID)

	return err
}

// ListByUser returns a user's bookings with the booked event attached.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	query := `
		SELECT b.id, b.event_id, b.user_id, b.booking_date, b.status,
		       e.id, e.artist_id, e.title, e.date, e.venue, e.ticket_price, e.created_at
		FROM bookings b
		JOIN events e ON e.id = b.event_id
		WHERE b.user_id = $1
		ORDER BY b.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking models.Booking
		var event models.Event

		err := rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.UserID,
			&booking.BookingDate,
			&booking.Status,
			&event.ID,
			&event.ArtistID,
			&event.Title,
			&event.Date,
			&event.Venue,
			&event.TicketPrice,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		booking.Event = &event
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}
