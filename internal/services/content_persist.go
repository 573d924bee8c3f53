package services

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/repo"
)

// persistContent best-effort saves a fetched summary as a durable content
// row. A store failure never fails the request that produced the summary;
// it is logged and the fresh summary is still served. db == nil disables
// persistence (tests that only exercise fetch logic).
func persistContent(ctx context.Context, db *gorm.DB, streamerID uint, summary *domain.ContentSummary) {
	if db == nil {
		return
	}

	// Platform-specific extras land in the JSON metadata column.
	meta, err := json.Marshal(map[string]any{
		"isLive":      summary.IsLive,
		"viewerCount": summary.ViewerCount,
		"duration":    summary.Duration,
		"viewCount":   summary.ViewCount,
		"likeCount":   summary.LikeCount,
		"videoId":     summary.VideoID,
		"timeAgo":     summary.TimeAgo,
	})
	if err == nil {
		_, err = repo.SaveContent(ctx, db, &domain.Content{
			StreamerID:   streamerID,
			Type:         summary.Type,
			Title:        summary.Title,
			Description:  summary.Description,
			ThumbnailURL: summary.ThumbnailURL,
			ContentURL:   summary.ContentURL,
			PublishedAt:  summary.PublishedAt,
			Metadata:     string(meta),
		})
	}
	if err != nil {
		log.Warn().Err(err).Uint("streamer_id", streamerID).Str("type", string(summary.Type)).
			Msg("persist content row failed")
	}
}
