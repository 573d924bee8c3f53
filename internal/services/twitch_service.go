// Package services – TwitchService
//
// This file implements the Twitch fetcher: given a streamer with a
// configured Twitch login, it produces the normalized summary of their
// current broadcast (when live) or their most recent VOD. Summaries are
// served from the shared response cache when fresh; a cold cache costs at
// most three sequential Helix calls (streams, users, videos). Concurrent
// cold-cache requests for the same login are not coalesced; each populates
// the cache redundantly, which is acceptable at this traffic scale.
package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/cache"
	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/upstream/twitch"
	"github.com/creatorhubtz/creatorhub-backend/internal/utils"
)

// liveDurationLabel is the fixed duration string shown while a channel is
// broadcasting, matching the site's French UI copy.
const liveDurationLabel = "EN DIRECT"

// liveDescriptionPrefix prefixes the synthesized description of a live
// summary.
const liveDescriptionPrefix = "🔴 Live now: "

// TwitchAPI is the Helix client contract required by TwitchService.
type TwitchAPI interface {
	// Streams returns the active broadcasts for a login; empty when offline.
	Streams(ctx context.Context, login string) ([]twitch.Stream, error)
	// UsersByLogin resolves a login; empty when the account does not exist.
	UsersByLogin(ctx context.Context, login string) ([]twitch.User, error)
	// LatestVideos returns the newest archived videos of a user id.
	LatestVideos(ctx context.Context, userID string, limit int) ([]twitch.Video, error)
}

// TwitchService produces content summaries from the Helix API behind the
// response cache.
type TwitchService struct {
	// DB receives durable content rows; nil disables persistence.
	DB *gorm.DB
	// API is the Helix client (owns token acquisition).
	API TwitchAPI
	// Cache is the shared response cache.
	Cache *cache.Store
	// TTL bounds content freshness; 0 uses the cache default.
	TTL time.Duration
	// Now is a clock seam for tests; nil means time.Now.
	Now func() time.Time
}

func (s *TwitchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// FetchLatest returns the streamer's current live broadcast or, when
// offline, their most recent VOD. The result is cached under the streamer's
// login; a second call within the TTL performs no Helix calls.
func (s *TwitchService) FetchLatest(ctx context.Context, streamer *domain.Streamer) (*domain.ContentSummary, error) {
	login := streamer.TwitchUsername
	if login == "" {
		return nil, ErrPlatformNotConfigured
	}

	key := cache.TwitchContentKey(login)
	if v, ok := s.Cache.Get(key); ok {
		if summary, ok := v.(*domain.ContentSummary); ok {
			return summary, nil
		}
	}

	streams, err := s.API.Streams(ctx, login)
	if err != nil {
		return nil, upstreamErr("twitch", "streams", err)
	}

	users, err := s.API.UsersByLogin(ctx, login)
	if err != nil {
		return nil, upstreamErr("twitch", "users", err)
	}
	if len(users) == 0 {
		return nil, ErrTwitchUserNotFound
	}

	var summary *domain.ContentSummary
	if len(streams) > 0 {
		summary = s.liveSummary(login, &streams[0])
	} else {
		videos, err := s.API.LatestVideos(ctx, users[0].ID, 1)
		if err != nil {
			return nil, upstreamErr("twitch", "videos", err)
		}
		if len(videos) == 0 {
			return nil, ErrNoContent
		}
		summary = s.videoSummary(&videos[0])
	}

	s.Cache.Put(key, summary, s.TTL)
	persistContent(ctx, s.DB, streamer.ID, summary)

	return summary, nil
}

// liveSummary normalizes an active broadcast.
func (s *TwitchService) liveSummary(login string, st *twitch.Stream) *domain.ContentSummary {
	isLive := true
	viewers := st.ViewerCount
	return &domain.ContentSummary{
		Type:         domain.TypeTwitchStream,
		Title:        st.Title,
		Description:  liveDescriptionPrefix + st.Title,
		ThumbnailURL: twitch.RenderThumbnail(st.ThumbnailURL),
		ContentURL:   "https://twitch.tv/" + login,
		PublishedAt:  st.StartedAt,
		TimeAgo:      utils.RelTimeFR(st.StartedAt, s.now()),
		IsLive:       &isLive,
		ViewerCount:  &viewers,
		Duration:     liveDurationLabel,
	}
}

// videoSummary normalizes the latest VOD of an offline channel.
func (s *TwitchService) videoSummary(v *twitch.Video) *domain.ContentSummary {
	isLive := false
	views := v.ViewCount
	description := v.Description
	if description == "" {
		description = v.Title
	}
	return &domain.ContentSummary{
		Type:         domain.TypeTwitchVideo,
		Title:        v.Title,
		Description:  description,
		ThumbnailURL: twitch.RenderThumbnail(v.ThumbnailURL),
		ContentURL:   v.URL,
		PublishedAt:  v.PublishedAt,
		TimeAgo:      utils.RelTimeFR(v.PublishedAt, s.now()),
		IsLive:       &isLive,
		ViewCount:    &views,
	}
}

