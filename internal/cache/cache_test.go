package cache

import (
	"testing"
	"time"
)

func TestPutThenGetReturnsValue(t *testing.T) {
	s := New(time.Minute)
	s.Put("k", "v", time.Minute)

	got, ok := s.Get("k")
	if !ok {
		t.Fatal("want hit, got miss")
	}
	if got.(string) != "v" {
		t.Errorf("got %v, want v", got)
	}
}

func TestGetAfterTTLIsMiss(t *testing.T) {
	s := New(time.Minute)
	s.Put("k", "v", 10*time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	if _, ok := s.Get("k"); ok {
		t.Fatal("expired entry served as hit")
	}
}

func TestPutOverwritesExistingEntry(t *testing.T) {
	s := New(time.Minute)
	s.Put("k", "old", time.Minute)
	s.Put("k", "new", time.Minute)

	got, _ := s.Get("k")
	if got.(string) != "new" {
		t.Errorf("got %v, want new", got)
	}
}

func TestZeroTTLUsesDefault(t *testing.T) {
	s := New(15 * time.Millisecond)
	s.Put("k", "v", 0)

	if _, ok := s.Get("k"); !ok {
		t.Fatal("want hit before default TTL elapses")
	}
	time.Sleep(30 * time.Millisecond)
	if _, ok := s.Get("k"); ok {
		t.Fatal("default TTL not applied")
	}
}

func TestMissOnUnknownKey(t *testing.T) {
	s := New(time.Minute)
	if _, ok := s.Get("absent"); ok {
		t.Fatal("unknown key reported as hit")
	}
}

func TestContentKeys(t *testing.T) {
	if got := TwitchContentKey("tayomi20"); got != "twitch_tayomi20" {
		t.Errorf("twitch key = %q", got)
	}
	if got := YouTubeContentKey("Zeyphir_Officiel"); got != "youtube_Zeyphir_Officiel" {
		t.Errorf("youtube key = %q", got)
	}
}
