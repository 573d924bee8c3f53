package twitch

import (
	"context"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/creatorhubtz/creatorhub-backend/internal/cache"
)

// DefaultTokenURL is Twitch's OAuth client-credentials exchange endpoint.
const DefaultTokenURL = "https://id.twitch.tv/oauth2/token"

// defaultTokenTTL matches Twitch's stated app token validity window.
const defaultTokenTTL = time.Hour

// TokenSource yields app access tokens for the Helix API. Tokens are cached
// in the shared response cache under a fixed key; a cache hit costs no
// network call. Concurrent callers racing on a cold cache each perform their
// own exchange and overwrite each other's entry, which is harmless at this
// call volume.
type TokenSource struct {
	conf  *clientcredentials.Config
	cache *cache.Store
	ttl   time.Duration
}

// NewTokenSource builds a TokenSource for the given app credentials.
// tokenURL == "" uses DefaultTokenURL; ttl <= 0 uses the one-hour default.
func NewTokenSource(clientID, clientSecret, tokenURL string, store *cache.Store, ttl time.Duration) *TokenSource {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenSource{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		},
		cache: store,
		ttl:   ttl,
	}
}

// Token returns a bearer token, from cache when fresh. On a miss it performs
// the credential exchange and caches the token for min(issuer expiry, ttl).
// Failed exchanges cache nothing.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	if v, ok := ts.cache.Get(cache.TwitchTokenKey); ok {
		if tok, ok := v.(string); ok {
			return tok, nil
		}
	}

	tok, err := ts.conf.Token(ctx)
	if err != nil {
		return "", err
	}

	ttl := ts.ttl
	if !tok.Expiry.IsZero() {
		if left := time.Until(tok.Expiry); left > 0 && left < ttl {
			ttl = left
		}
	}
	ts.cache.Put(cache.TwitchTokenKey, tok.AccessToken, ttl)

	return tok.AccessToken, nil
}
