package repo

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateStreamerAssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "A", Slug: "a", Description: "d", ProfileImage: "p", BannerImage: "b"})
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "B", Slug: "b", Description: "d", ProfileImage: "p", BannerImage: "b"})
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("want sequential ids 1,2; got %d,%d", a.ID, b.ID)
	}
}

func TestCreateStreamerDuplicateSlugFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if _, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "A", Slug: "dup", Description: "d", ProfileImage: "p", BannerImage: "b"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := CreateStreamer(ctx, db, &domain.Streamer{Name: "B", Slug: "dup", Description: "d", ProfileImage: "p", BannerImage: "b"}); err == nil {
		t.Fatal("want unique-slug violation, got nil")
	}
}

func TestGetStreamerBySlug(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := GetStreamerBySlug(ctx, db, "zeyphir")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Name != "Zeyphir" {
		t.Errorf("name = %q, want Zeyphir", s.Name)
	}
	if s.TwitchUsername != "zayphir_" || s.YouTubeChannel != "Zeyphir_Officiel" {
		t.Errorf("platform handles not seeded as shipped: %+v", s)
	}

	if _, err := GetStreamerBySlug(ctx, db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown slug: err = %v, want ErrNotFound", err)
	}
}

func TestListStreamersReturnsSeedOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := ListStreamers(ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Slug != "tayomi20" || all[1].Slug != "zeyphir" {
		t.Errorf("seed order wrong: %q, %q", all[0].Slug, all[1].Slug)
	}
	// Tayomi has no YouTube channel configured.
	if all[0].YouTubeChannel != "" {
		t.Errorf("tayomi20 youtubeChannel = %q, want empty", all[0].YouTubeChannel)
	}
}
