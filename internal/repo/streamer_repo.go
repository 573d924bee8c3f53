// Package repo implements the data access layer for domain entities, backed
// by GORM. This file provides repository functions for the Streamer model.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the thin-repository approach: no business logic, only persistence and
// query composition.
//
// Error semantics:
//   - When a streamer is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist. It aliases
// gorm.ErrRecordNotFound for consistency across services and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateStreamer inserts a new Streamer row. The ID is assigned sequentially
// by the database. Only the startup seed path calls this.
func CreateStreamer(ctx context.Context, db *gorm.DB, s *domain.Streamer) (*domain.Streamer, error) {
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// ListStreamers returns every streamer profile in insertion order.
func ListStreamers(ctx context.Context, db *gorm.DB) ([]domain.Streamer, error) {
	var out []domain.Streamer
	if err := db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetStreamer fetches a streamer by primary key, or ErrNotFound.
func GetStreamer(ctx context.Context, db *gorm.DB, id uint) (*domain.Streamer, error) {
	var s domain.Streamer
	if err := db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetStreamerBySlug fetches a streamer by its unique slug, or ErrNotFound.
func GetStreamerBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Streamer, error) {
	var s domain.Streamer
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
