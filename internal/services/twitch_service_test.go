package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creatorhubtz/creatorhub-backend/internal/cache"
	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/repo"
	"github.com/creatorhubtz/creatorhub-backend/internal/upstream/twitch"
)

// ----- Fake Helix API -----

type fakeTwitchAPI struct {
	streams    []twitch.Stream
	streamsErr error

	users    []twitch.User
	usersErr error

	videos    []twitch.Video
	videosErr error

	streamsCalls int
	usersCalls   int
	videosCalls  int
}

func (f *fakeTwitchAPI) Streams(ctx context.Context, login string) ([]twitch.Stream, error) {
	f.streamsCalls++
	return f.streams, f.streamsErr
}

func (f *fakeTwitchAPI) UsersByLogin(ctx context.Context, login string) ([]twitch.User, error) {
	f.usersCalls++
	return f.users, f.usersErr
}

func (f *fakeTwitchAPI) LatestVideos(ctx context.Context, userID string, limit int) ([]twitch.Video, error) {
	f.videosCalls++
	return f.videos, f.videosErr
}

// ----- Helpers -----

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTwitchService(api *fakeTwitchAPI) *TwitchService {
	return &TwitchService{
		API:   api,
		Cache: cache.New(time.Minute),
		Now:   func() time.Time { return testNow },
	}
}

func twitchStreamer() *domain.Streamer {
	return &domain.Streamer{ID: 1, Name: "Tayomi20", Slug: "tayomi20", TwitchUsername: "tayomi20"}
}

// ----- Tests -----

func TestTwitchFetchLatestLive(t *testing.T) {
	api := &fakeTwitchAPI{
		streams: []twitch.Stream{{
			ID:           "s1",
			UserID:       "9",
			Title:        "Hollow Knight speedrun",
			ViewerCount:  128,
			StartedAt:    testNow.Add(-3 * time.Minute),
			ThumbnailURL: "https://cdn/t-{width}x{height}.jpg",
		}},
		users: []twitch.User{{ID: "9", Login: "tayomi20"}},
	}
	svc := newTwitchService(api)

	got, err := svc.FetchLatest(context.Background(), twitchStreamer())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got.Type != domain.TypeTwitchStream {
		t.Errorf("type = %q, want %q", got.Type, domain.TypeTwitchStream)
	}
	if got.IsLive == nil || !*got.IsLive {
		t.Error("isLive not true")
	}
	if got.Duration != "EN DIRECT" {
		t.Errorf("duration = %q, want EN DIRECT", got.Duration)
	}
	if got.ContentURL != "https://twitch.tv/tayomi20" {
		t.Errorf("contentUrl = %q", got.ContentURL)
	}
	if got.ThumbnailURL != "https://cdn/t-440x248.jpg" {
		t.Errorf("thumbnailUrl = %q", got.ThumbnailURL)
	}
	if got.Description != "🔴 Live now: Hollow Knight speedrun" {
		t.Errorf("description = %q", got.Description)
	}
	if got.ViewerCount == nil || *got.ViewerCount != 128 {
		t.Errorf("viewerCount = %v", got.ViewerCount)
	}
	if got.TimeAgo != "il y a 3 minutes" {
		t.Errorf("timeAgo = %q", got.TimeAgo)
	}
	if api.videosCalls != 0 {
		t.Error("videos endpoint called on live branch")
	}
}

func TestTwitchFetchLatestOfflineVOD(t *testing.T) {
	api := &fakeTwitchAPI{
		users: []twitch.User{{ID: "9", Login: "tayomi20"}},
		videos: []twitch.Video{{
			ID:           "v1",
			Title:        "Best of",
			URL:          "https://twitch.tv/videos/v1",
			ThumbnailURL: "https://cdn/v-%{width}x%{height}.jpg",
			PublishedAt:  testNow.Add(-5 * time.Hour),
			ViewCount:    999,
		}},
	}
	svc := newTwitchService(api)

	got, err := svc.FetchLatest(context.Background(), twitchStreamer())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got.Type != domain.TypeTwitchVideo {
		t.Errorf("type = %q", got.Type)
	}
	if got.IsLive == nil || *got.IsLive {
		t.Error("isLive not false")
	}
	if got.ViewCount == nil || *got.ViewCount != 999 {
		t.Errorf("viewCount = %v", got.ViewCount)
	}
	if got.ThumbnailURL != "https://cdn/v-440x248.jpg" {
		t.Errorf("thumbnailUrl = %q", got.ThumbnailURL)
	}
	// Empty VOD description falls back to the title.
	if got.Description != "Best of" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestTwitchFetchLatestSecondCallServedFromCache(t *testing.T) {
	api := &fakeTwitchAPI{
		users:  []twitch.User{{ID: "9"}},
		videos: []twitch.Video{{ID: "v1", Title: "t", URL: "u", PublishedAt: testNow}},
	}
	svc := newTwitchService(api)
	ctx := context.Background()

	first, err := svc.FetchLatest(ctx, twitchStreamer())
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.FetchLatest(ctx, twitchStreamer())
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if first != second {
		t.Error("second call not served from cache")
	}
	if api.streamsCalls != 1 || api.usersCalls != 1 || api.videosCalls != 1 {
		t.Errorf("upstream called again: streams=%d users=%d videos=%d",
			api.streamsCalls, api.usersCalls, api.videosCalls)
	}
}

func TestTwitchFetchLatestNoUsername(t *testing.T) {
	api := &fakeTwitchAPI{}
	svc := newTwitchService(api)

	_, err := svc.FetchLatest(context.Background(), &domain.Streamer{ID: 1, Slug: "x"})
	if !errors.Is(err, ErrPlatformNotConfigured) {
		t.Fatalf("err = %v, want ErrPlatformNotConfigured", err)
	}
	if api.streamsCalls != 0 {
		t.Error("upstream called despite missing username")
	}
}

func TestTwitchFetchLatestUnknownUser(t *testing.T) {
	svc := newTwitchService(&fakeTwitchAPI{})

	_, err := svc.FetchLatest(context.Background(), twitchStreamer())
	if !errors.Is(err, ErrTwitchUserNotFound) {
		t.Fatalf("err = %v, want ErrTwitchUserNotFound", err)
	}
	if !IsNotFound(err) {
		t.Error("ErrTwitchUserNotFound not classified as not-found")
	}
}

func TestTwitchFetchLatestNoVideos(t *testing.T) {
	svc := newTwitchService(&fakeTwitchAPI{users: []twitch.User{{ID: "9"}}})

	_, err := svc.FetchLatest(context.Background(), twitchStreamer())
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("err = %v, want ErrNoContent", err)
	}
}

func TestTwitchFetchLatestUpstreamFailure(t *testing.T) {
	boom := errors.New("boom")
	svc := newTwitchService(&fakeTwitchAPI{streamsErr: boom})

	_, err := svc.FetchLatest(context.Background(), twitchStreamer())

	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %T, want *UpstreamError", err)
	}
	if ue.Platform != "twitch" || !errors.Is(err, boom) {
		t.Errorf("wrapped error wrong: %v", err)
	}
	if IsNotFound(err) {
		t.Error("upstream failure classified as not-found")
	}
}

func TestTwitchFetchLatestPersistsDurableRow(t *testing.T) {
	db, err := repo.OpenMemory()
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ctx := context.Background()
	streamer, err := repo.CreateStreamer(ctx, db, &domain.Streamer{Name: "A", Slug: "a", Description: "d", ProfileImage: "p", BannerImage: "b", TwitchUsername: "a"})
	if err != nil {
		t.Fatalf("create streamer: %v", err)
	}

	api := &fakeTwitchAPI{
		users:  []twitch.User{{ID: "9"}},
		videos: []twitch.Video{{ID: "v1", Title: "vod", URL: "u", PublishedAt: testNow}},
	}
	svc := newTwitchService(api)
	svc.DB = db

	s := *streamer
	s.TwitchUsername = "a"
	if _, err := svc.FetchLatest(ctx, &s); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	row, err := repo.LatestContent(ctx, db, streamer.ID, domain.TypeTwitchVideo)
	if err != nil {
		t.Fatalf("latest content: %v", err)
	}
	if row.Title != "vod" {
		t.Errorf("durable row title = %q", row.Title)
	}
}
