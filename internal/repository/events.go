package repository

import (
	"context"
	"database/sql"

	"maestro/internal/database"
	"maestro/internal/models"
)

type EventRepository struct {
	db *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (artist_id, title, date, venue, ticket_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		event.ArtistID,
		event.Title,
		event.Date,
		event.Venue,
		event.TicketPrice,
	).Scan(&event.ID, &event.CreatedAt)

	return err
}

// List returns all events with their owning artist attached. The join is
// LEFT because an event may reference an artist id that does not exist.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	query := `
		SELECT e.id, e.artist_id, e.title, e.date, e.venue, e.ticket_price, e.created_at,
		       a.id, a.name, a.genre, a.bio, a.email, a.created_at
		FROM events e
		LEFT JOIN artists a ON a.id = e.artist_id
		ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event models.Event
		var (
			artistID      sql.NullInt64
			artistName    sql.NullString
			artistGenre   sql.NullString
			artistBio     sql.NullString
			artistEmail   sql.NullString
			artistCreated sql.NullTime
		)

		err := rows.Scan(
			&event.ID,
			&event.ArtistID,
			&event.Title,
			&event.Date,
			&event.Venue,
			&event.TicketPrice,
			&event.CreatedAt,
			&artistID,
			&artistName,
			&artistGenre,
			&artistBio,
			&artistEmail,
			&artistCreated,
		)
		if err != nil {
			return nil, err
		}

		if artistID.Valid {
			event.Artist = &models.Artist{
				ID:        artistID.Int64,
				Name:      artistName.String,
				Genre:     artistGenre.String,
				Bio:       artistBio.String,
				Email:     artistEmail.String,
				CreatedAt: artistCreated.Time,
			}
		}

		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	event := &models.Event{}
	query := `
		SELECT id, artist_id, title, date, venue, ticket_price, created_at
		FROM events
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.ArtistID,
		&event.Title,
		&event.Date,
		&event.Venue,
		&event.TicketPrice,
		&event.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return event, err
}
