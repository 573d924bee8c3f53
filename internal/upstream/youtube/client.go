// Package youtube wraps the YouTube Data API v3 for the three lookups the
// site needs: resolving a channel handle to a channel id, finding the
// channel's most recent upload, and fetching that video's duration and
// stats. It builds on google.golang.org/api/youtube/v3.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// Video is the snippet-level description of one upload.
type Video struct {
	ID           string
	Title        string
	Description  string
	ThumbnailURL string
	PublishedAt  time.Time
}

// VideoDetails carries the contentDetails/statistics fields of one video.
type VideoDetails struct {
	Duration  string // compact ISO-8601, e.g. "PT1H5M30S"
	ViewCount int64
	LikeCount int64
}

// Client calls the YouTube Data API with API-key authentication.
type Client struct {
	svc *ytapi.Service
}

// NewClient builds a Data API client. An empty key is accepted; requests
// then fail at the API's auth check, which callers surface as an upstream
// error.
func NewClient(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	var all []option.ClientOption
	if apiKey != "" {
		all = append(all, option.WithAPIKey(apiKey))
	} else {
		// Keep construction infallible without credentials; the API itself
		// rejects unauthenticated calls at request time.
		all = append(all, option.WithoutAuthentication())
	}
	all = append(all, opts...)
	svc, err := ytapi.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ChannelIDByUsername resolves a legacy username to a channel id. Returns ""
// (and no error) when the username does not resolve.
func (c *Client) ChannelIDByUsername(ctx context.Context, username string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"id"}).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Id, nil
}

// SearchChannelID finds a channel matching the free-text query. Returns ""
// when no channel matches. Used as the fallback when the direct username
// lookup comes back empty.
func (c *Client) SearchChannelID(ctx context.Context, query string) (string, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).Do()
	if err != nil {
		return "", err
	}
	if len(resp.Items) == 0 || resp.Items[0].Id == nil {
		return "", nil
	}
	return resp.Items[0].Id.ChannelId, nil
}

// LatestVideo returns the channel's most recently published video, or nil
// when the channel has none.
func (c *Client) LatestVideo(ctx context.Context, channelID string) (*Video, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(1).
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	if item.Id == nil || item.Snippet == nil {
		return nil, fmt.Errorf("search result for channel %s missing id or snippet", channelID)
	}

	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("video %s publishedAt %q: %w", item.Id.VideoId, item.Snippet.PublishedAt, err)
	}

	return &Video{
		ID:           item.Id.VideoId,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		ThumbnailURL: bestThumbnail(item.Snippet.Thumbnails),
		PublishedAt:  publishedAt.In(time.UTC),
	}, nil
}

// VideoDetails fetches duration and statistics for a video id, or nil when
// the id is unknown.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*VideoDetails, error) {
	resp, err := c.svc.Videos.List([]string{"contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, nil
	}

	item := resp.Items[0]
	if item.ContentDetails == nil || item.Statistics == nil {
		return nil, fmt.Errorf("video %s missing contentDetails or statistics", videoID)
	}

	return &VideoDetails{
		Duration:  item.ContentDetails.Duration,
		ViewCount: int64(item.Statistics.ViewCount),
		LikeCount: int64(item.Statistics.LikeCount),
	}, nil
}

// bestThumbnail picks the highest-resolution thumbnail variant provided.
func bestThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, v := range []*ytapi.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if v != nil && v.Url != "" {
			return v.Url
		}
	}
	return ""
}
