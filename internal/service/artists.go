package service

import (
	"context"
	"fmt"

	"maestro/internal/apperr"
	"maestro/internal/models"
)

type ArtistStore interface {
	Create(ctx context.Context, artist *models.Artist) error
	List(ctx context.Context) ([]models.Artist, error)
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
}

type ArtistService struct {
	artists ArtistStore
}

func NewArtistService(artists ArtistStore) *ArtistService {
	return &ArtistService{artists: artists}
}

func (s *ArtistService) Create(ctx context.Context, req *models.CreateArtistRequest) (*models.Artist, error) {
	if req.Name == "" {
		return nil, apperr.Validation("artist name is required")
	}

	artist := &models.Artist{
		Name:  req.Name,
		Genre: req.Genre,
		Bio:   req.Bio,
		Email: req.Email,
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return artist, nil
}

func (s *ArtistService) List(ctx context.Context) ([]models.Artist, error) {
	artists, err := s.artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	return artists, nil
}

func (s *ArtistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	artist, err := s.artists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	if artist == nil {
		return nil, apperr.NotFound("artist not found")
	}
	return artist, nil
}
