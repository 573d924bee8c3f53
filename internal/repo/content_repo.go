// Package repo implements the data access layer for domain entities, backed
// by GORM. This file provides repository functions for the Content model,
// the durable record of fetched platform content.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

// SaveContent inserts a durable content row. CreatedAt is set to UTC now.
func SaveContent(ctx context.Context, db *gorm.DB, c *domain.Content) (*domain.Content, error) {
	c.CreatedAt = time.Now().UTC()
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// LatestContent returns the most recently published content row for a
// streamer, optionally filtered by content type. Returns ErrNotFound when
// the streamer has no matching rows.
func LatestContent(ctx context.Context, db *gorm.DB, streamerID uint, contentType domain.ContentType) (*domain.Content, error) {
	q := db.WithContext(ctx).Where("streamer_id = ?", streamerID)
	if contentType != "" {
		q = q.Where("type = ?", contentType)
	}

	var c domain.Content
	if err := q.Order("published_at DESC").First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
