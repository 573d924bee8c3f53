package domain

import "time"

// ContentType tags a content summary with the platform shape it carries.
// Exactly one tag applies per summary, and the tag determines which of the
// optional fields below are populated.
type ContentType string

const (
	// TypeTwitchStream is a currently running Twitch broadcast.
	TypeTwitchStream ContentType = "TWITCH_STREAM"
	// TypeTwitchVideo is the most recent Twitch VOD of an offline channel.
	TypeTwitchVideo ContentType = "TWITCH_VIDEO"
	// TypeYouTubeVideo is the most recent upload of a YouTube channel.
	TypeYouTubeVideo ContentType = "YOUTUBE_VIDEO"
	// TypeTikTokVideo is scaffolded but unused; the TikTok endpoint was
	// removed from the site.
	TypeTikTokVideo ContentType = "TIKTOK_VIDEO"
)

// ContentSummary is the normalized API representation of a streamer's latest
// content on one platform. Go has no sum types, so the variants share one
// struct: Type selects which optional fields carry meaning.
//
//	TWITCH_STREAM: IsLive=true, ViewerCount, Duration (fixed live marker)
//	TWITCH_VIDEO:  IsLive=false, ViewCount
//	YOUTUBE_VIDEO: VideoID, Duration (humanized), ViewCount, LikeCount
//
// A summary is always fully populated for its variant or not returned at
// all; the API never serves partial objects.
type ContentSummary struct {
	Type         ContentType `json:"type"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	ContentURL   string      `json:"contentUrl"`
	PublishedAt  time.Time   `json:"publishedAt"`
	TimeAgo      string      `json:"timeAgo"`

	IsLive      *bool  `json:"isLive,omitempty"`
	ViewerCount *int64 `json:"viewerCount,omitempty"`
	Duration    string `json:"duration,omitempty"`
	ViewCount   *int64 `json:"viewCount,omitempty"`
	LikeCount   *int64 `json:"likeCount,omitempty"`
	VideoID     string `json:"videoId,omitempty"`
}
