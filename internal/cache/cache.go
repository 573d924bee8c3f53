// Package cache provides the short-TTL in-memory response cache that shields
// the upstream platform APIs from repeated calls. Keys are small and bounded
// (one entry per streamer/platform pair plus the Twitch app token), so no
// size-based eviction policy is needed; entries leave only by TTL expiry.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Key prefixes and fixed keys. Content entries use prefix + platform login.
const (
	// TwitchTokenKey holds the shared Twitch app access token.
	TwitchTokenKey = "twitch_auth_token"

	twitchPrefix  = "twitch_"
	youtubePrefix = "youtube_"
)

// TwitchContentKey returns the cache key for a streamer's Twitch content.
func TwitchContentKey(login string) string { return twitchPrefix + login }

// YouTubeContentKey returns the cache key for a streamer's YouTube content.
func YouTubeContentKey(channel string) string { return youtubePrefix + channel }

// Store is a TTL-bounded key-value cache. A Get after the entry's TTL has
// elapsed is a miss; stale values are never returned. Safe for concurrent
// use by HTTP handlers.
type Store struct {
	c          *gocache.Cache
	defaultTTL time.Duration
}

// New builds a Store whose entries default to defaultTTL when Put is called
// with ttl == 0. A background janitor sweeps expired entries; reads also
// check expiry, so the no-stale-read guarantee does not depend on the sweep.
func New(defaultTTL time.Duration) *Store {
	return &Store{
		c:          gocache.New(defaultTTL, 2*defaultTTL),
		defaultTTL: defaultTTL,
	}
}

// Put stores value under key, overwriting any existing entry. The entry
// expires ttl from now; ttl == 0 uses the store default.
func (s *Store) Put(key string, value any, ttl time.Duration) {
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	s.c.Set(key, value, ttl)
}

// Get returns the value stored under key, or ok=false when the key is absent
// or its entry has expired.
func (s *Store) Get(key string) (any, bool) {
	return s.c.Get(key)
}
