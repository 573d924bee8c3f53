// Package twitch is a minimal Helix API client covering the three lookups
// the site needs: live streams by login, users by login, and the latest
// archived video of a user. Responses are decoded into typed structs; the
// caller decides what an empty result means.
package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Helix API root.
const DefaultBaseURL = "https://api.twitch.tv/helix"

// Thumbnail dimensions substituted into Helix template URLs.
const (
	thumbWidth  = "440"
	thumbHeight = "248"
)

// thumbReplacer fills Helix thumbnail templates. Live streams use
// {width}/{height}; archived videos use the %{width}/%{height} form. The
// percent variants must be listed first so they are not half-consumed by
// the plain ones.
var thumbReplacer = strings.NewReplacer(
	"%{width}", thumbWidth,
	"%{height}", thumbHeight,
	"{width}", thumbWidth,
	"{height}", thumbHeight,
)

// RenderThumbnail substitutes fixed dimensions into a Helix thumbnail
// template URL, covering both placeholder forms.
func RenderThumbnail(template string) string {
	return thumbReplacer.Replace(template)
}

// Tokens is the credential dependency of Client.
type Tokens interface {
	Token(ctx context.Context) (string, error)
}

// Stream is one live broadcast as reported by GET /streams.
type Stream struct {
	ID           string
	UserID       string
	UserName     string
	Title        string
	ViewerCount  int64
	StartedAt    time.Time
	ThumbnailURL string
}

// User is one account as reported by GET /users.
type User struct {
	ID          string
	Login       string
	DisplayName string
}

// Video is one archived broadcast as reported by GET /videos.
type Video struct {
	ID           string
	Title        string
	Description  string
	URL          string
	ThumbnailURL string
	PublishedAt  time.Time
	ViewCount    int64
}

// Client calls the Helix API with app-token authentication.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	tokens     Tokens
}

// NewClient builds a Helix client. baseURL == "" uses DefaultBaseURL;
// httpClient == nil uses a client with no request timeout, leaving
// cancellation to the caller's context.
func NewClient(clientID string, tokens Tokens, httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientID:   clientID,
		tokens:     tokens,
	}
}

// Streams returns the active broadcasts for a login; empty when offline.
func (c *Client) Streams(ctx context.Context, login string) ([]Stream, error) {
	var env struct {
		Data []struct {
			ID           string `json:"id"`
			UserID       string `json:"user_id"`
			UserName     string `json:"user_name"`
			Title        string `json:"title"`
			ViewerCount  int64  `json:"viewer_count"`
			StartedAt    string `json:"started_at"`
			ThumbnailURL string `json:"thumbnail_url"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/streams?user_login="+url.QueryEscape(login), &env); err != nil {
		return nil, err
	}

	out := make([]Stream, 0, len(env.Data))
	for _, d := range env.Data {
		startedAt, err := time.Parse(time.RFC3339, d.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("stream %s started_at %q: %w", d.ID, d.StartedAt, err)
		}
		out = append(out, Stream{
			ID:           d.ID,
			UserID:       d.UserID,
			UserName:     d.UserName,
			Title:        d.Title,
			ViewerCount:  d.ViewerCount,
			StartedAt:    startedAt.In(time.UTC),
			ThumbnailURL: d.ThumbnailURL,
		})
	}
	return out, nil
}

// UsersByLogin resolves a login to Helix user records; empty when the login
// does not exist.
func (c *Client) UsersByLogin(ctx context.Context, login string) ([]User, error) {
	var env struct {
		Data []struct {
			ID          string `json:"id"`
			Login       string `json:"login"`
			DisplayName string `json:"display_name"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/users?login="+url.QueryEscape(login), &env); err != nil {
		return nil, err
	}

	out := make([]User, 0, len(env.Data))
	for _, d := range env.Data {
		out = append(out, User{ID: d.ID, Login: d.Login, DisplayName: d.DisplayName})
	}
	return out, nil
}

// LatestVideos returns a user's most recent archived videos, newest first,
// capped at limit.
func (c *Client) LatestVideos(ctx context.Context, userID string, limit int) ([]Video, error) {
	if limit <= 0 {
		limit = 1
	}
	var env struct {
		Data []struct {
			ID           string `json:"id"`
			Title        string `json:"title"`
			Description  string `json:"description"`
			URL          string `json:"url"`
			ThumbnailURL string `json:"thumbnail_url"`
			PublishedAt  string `json:"published_at"`
			ViewCount    int64  `json:"view_count"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/videos?user_id=%s&first=%d", url.QueryEscape(userID), limit)
	if err := c.get(ctx, path, &env); err != nil {
		return nil, err
	}

	out := make([]Video, 0, len(env.Data))
	for _, d := range env.Data {
		publishedAt, err := time.Parse(time.RFC3339, d.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("video %s published_at %q: %w", d.ID, d.PublishedAt, err)
		}
		out = append(out, Video{
			ID:           d.ID,
			Title:        d.Title,
			Description:  d.Description,
			URL:          d.URL,
			ThumbnailURL: d.ThumbnailURL,
			PublishedAt:  publishedAt.In(time.UTC),
			ViewCount:    d.ViewCount,
		})
	}
	return out, nil
}

// get performs an authenticated GET against the Helix API and decodes the
// JSON body into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("acquire app token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("helix %s replied %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode helix %s: %w", path, err)
	}
	return nil
}
