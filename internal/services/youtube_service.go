// Package services – YouTubeService
//
// This file implements the YouTube fetcher: resolve the configured channel
// handle to a channel id (direct username lookup, then channel search as a
// fallback), find the most recent upload, and enrich it with duration and
// view/like statistics. Results are cached like the Twitch fetcher's.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/cache"
	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/upstream/youtube"
	"github.com/creatorhubtz/creatorhub-backend/internal/utils"
)

// YouTubeAPI is the Data API client contract required by YouTubeService.
type YouTubeAPI interface {
	// ChannelIDByUsername resolves a legacy username; "" when unknown.
	ChannelIDByUsername(ctx context.Context, username string) (string, error)
	// SearchChannelID finds a channel by free-text query; "" when none match.
	SearchChannelID(ctx context.Context, query string) (string, error)
	// LatestVideo returns the channel's newest upload, or nil when empty.
	LatestVideo(ctx context.Context, channelID string) (*youtube.Video, error)
	// VideoDetails fetches duration and stats, or nil for an unknown id.
	VideoDetails(ctx context.Context, videoID string) (*youtube.VideoDetails, error)
}

// YouTubeService produces content summaries from the YouTube Data API
// behind the response cache.
type YouTubeService struct {
	// DB receives durable content rows; nil disables persistence.
	DB *gorm.DB
	// API is the Data API client.
	API YouTubeAPI
	// Cache is the shared response cache.
	Cache *cache.Store
	// TTL bounds content freshness; 0 uses the cache default.
	TTL time.Duration
	// Now is a clock seam for tests; nil means time.Now.
	Now func() time.Time
}

func (s *YouTubeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// FetchLatest returns the newest upload of the streamer's configured
// channel, fully populated or not at all. The result is cached under the
// channel handle.
func (s *YouTubeService) FetchLatest(ctx context.Context, streamer *domain.Streamer) (*domain.ContentSummary, error) {
	channel := streamer.YouTubeChannel
	if channel == "" {
		return nil, ErrPlatformNotConfigured
	}

	key := cache.YouTubeContentKey(channel)
	if v, ok := s.Cache.Get(key); ok {
		if summary, ok := v.(*domain.ContentSummary); ok {
			return summary, nil
		}
	}

	channelID, err := s.resolveChannelID(ctx, channel)
	if err != nil {
		return nil, err
	}

	video, err := s.API.LatestVideo(ctx, channelID)
	if err != nil {
		return nil, upstreamErr("youtube", "search videos", err)
	}
	if video == nil {
		return nil, ErrNoContent
	}

	details, err := s.API.VideoDetails(ctx, video.ID)
	if err != nil {
		return nil, upstreamErr("youtube", "video details", err)
	}
	if details == nil {
		return nil, upstreamErr("youtube", "video details", ErrMalformedResponse)
	}

	duration, err := youtube.FormatDuration(details.Duration)
	if err != nil {
		return nil, upstreamErr("youtube", "parse duration", err)
	}

	isLive := false
	views, likes := details.ViewCount, details.LikeCount
	summary := &domain.ContentSummary{
		Type:         domain.TypeYouTubeVideo,
		Title:        video.Title,
		Description:  video.Description,
		ThumbnailURL: video.ThumbnailURL,
		ContentURL:   "https://www.youtube.com/watch?v=" + video.ID,
		PublishedAt:  video.PublishedAt,
		TimeAgo:      utils.RelTimeFR(video.PublishedAt, s.now()),
		IsLive:       &isLive,
		Duration:     duration,
		ViewCount:    &views,
		LikeCount:    &likes,
		VideoID:      video.ID,
	}

	s.Cache.Put(key, summary, s.TTL)
	persistContent(ctx, s.DB, streamer.ID, summary)

	return summary, nil
}

// resolveChannelID maps the configured handle to a stable channel id:
// direct username lookup first, then a channel search on empty result.
func (s *YouTubeService) resolveChannelID(ctx context.Context, channel string) (string, error) {
	id, err := s.API.ChannelIDByUsername(ctx, channel)
	if err != nil {
		return "", upstreamErr("youtube", "channels by username", err)
	}
	if id != "" {
		return id, nil
	}

	id, err = s.API.SearchChannelID(ctx, channel)
	if err != nil {
		return "", upstreamErr("youtube", "search channel", err)
	}
	if id == "" {
		return "", ErrChannelNotFound
	}
	return id, nil
}
