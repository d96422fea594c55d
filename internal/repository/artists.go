package repository

import (
	"context"
	"database/sql"

	"maestro/internal/database"
	"maestro/internal/models"
)

type ArtistRepository struct {
	db *database.DB
}

func NewArtistRepository(db *database.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `
		INSERT INTO artists (name, genre, bio, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		artist.Name,
		artist.Genre,
		artist.Bio,
		artist.Email,
	).Scan(&artist.ID, &artist.CreatedAt)

	return err
}

func (r *ArtistRepository) List(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	query := `
		SELECT id, name, genre, bio, email, created_at
		FROM artists
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var artist models.Artist
		err := rows.Scan(
			&artist.ID,
			&artist.Name,
			&artist.Genre,
			&artist.Bio,
			&artist.Email,
			&artist.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	artist := &models.Artist{}
	query := `
		SELECT id, name, genre, bio, email, created_at
		FROM artists
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.Genre,
		&artist.Bio,
		&artist.Email,
		&artist.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return artist, err
}
