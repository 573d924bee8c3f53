package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

func TestSaveAndLatestContent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "A", Slug: "a", Description: "d", ProfileImage: "p", BannerImage: "b"})
	if err != nil {
		t.Fatalf("create streamer: %v", err)
	}

	old := domain.Content{
		StreamerID:  s.ID,
		Type:        domain.TypeTwitchVideo,
		Title:       "older vod",
		ContentURL:  "https://twitch.tv/videos/1",
		PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := domain.Content{
		StreamerID:  s.ID,
		Type:        domain.TypeTwitchVideo,
		Title:       "newer vod",
		ContentURL:  "https://twitch.tv/videos/2",
		PublishedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	yt := domain.Content{
		StreamerID:  s.ID,
		Type:        domain.TypeYouTubeVideo,
		Title:       "upload",
		ContentURL:  "https://www.youtube.com/watch?v=x",
		PublishedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, c := range []domain.Content{old, newer, yt} {
		if _, err := SaveContent(ctx, db, &c); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	got, err := LatestContent(ctx, db, s.ID, domain.TypeTwitchVideo)
	if err != nil {
		t.Fatalf("latest twitch: %v", err)
	}
	if got.Title != "newer vod" {
		t.Errorf("latest twitch = %q, want newer vod", got.Title)
	}

	// Untyped query picks the overall newest row.
	got, err = LatestContent(ctx, db, s.ID, "")
	if err != nil {
		t.Fatalf("latest any: %v", err)
	}
	if got.Type != domain.TypeYouTubeVideo {
		t.Errorf("latest any type = %q, want %q", got.Type, domain.TypeYouTubeVideo)
	}
}

func TestLatestContentEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "A", Slug: "a", Description: "d", ProfileImage: "p", BannerImage: "b"})
	if err != nil {
		t.Fatalf("create streamer: %v", err)
	}

	if _, err := LatestContent(ctx, db, s.ID, domain.TypeYouTubeVideo); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUserRepoRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, db, &domain.User{Username: "admin", Password: "hash"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	u, err := GetUserByUsername(ctx, db, "admin")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.ID == 0 {
		t.Error("user id not assigned")
	}
	if _, err := GetUserByUsername(ctx, db, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
