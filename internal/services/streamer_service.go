package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/repo"
)

// StreamerService serves the seeded creator profiles from the record store.
type StreamerService struct {
	// DB is the GORM handle for the in-memory record store.
	DB *gorm.DB
}

// NewStreamerService constructs a StreamerService over db.
func NewStreamerService(db *gorm.DB) *StreamerService {
	return &StreamerService{DB: db}
}

// List returns every seeded streamer profile.
func (s *StreamerService) List(ctx context.Context) ([]domain.Streamer, error) {
	return repo.ListStreamers(ctx, s.DB)
}

// GetBySlug returns the streamer with the given slug, or ErrStreamerNotFound.
func (s *StreamerService) GetBySlug(ctx context.Context, slug string) (*domain.Streamer, error) {
	streamer, err := repo.GetStreamerBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrStreamerNotFound
		}
		return nil, err
	}
	return streamer, nil
}
