// Package domain defines the persistence models for streamers, fetched
// platform content, and users. These types are mapped with GORM and form
// the core data layer of the CreatorHub backend.
package domain

import (
	"time"
)

// Streamer is one of the seeded creator profiles the site promotes.
// Rows are created once at process start and never mutated afterwards.
//
// Fields:
//   - ID: sequential autoincrement primary key.
//   - Slug: unique, URL-safe lookup key (e.g. "tayomi20").
//   - TwitchUsername / YouTubeChannel / TikTokUsername: platform handles;
//     an empty value means the streamer is not present on that platform.
type Streamer struct {
	ID             uint   `json:"id"             gorm:"primaryKey;autoIncrement"`
	Name           string `json:"name"           gorm:"type:varchar(64);not null"`
	Slug           string `json:"slug"           gorm:"type:varchar(64);not null;uniqueIndex"`
	Description    string `json:"description"    gorm:"type:text;not null"`
	ProfileImage   string `json:"profileImage"   gorm:"type:text;not null"`
	BannerImage    string `json:"bannerImage"    gorm:"type:text;not null"`
	TwitchUsername string `json:"twitchUsername,omitempty" gorm:"type:varchar(64)"`
	YouTubeChannel string `json:"youtubeChannel,omitempty" gorm:"type:varchar(128);column:youtube_channel"`
	TikTokUsername string `json:"tiktokUsername,omitempty" gorm:"type:varchar(64);column:tiktok_username"`
}

// TableName returns the database table name for Streamer.
func (Streamer) TableName() string { return "streamers" }

// Content is the durable record of a fetched content summary. Each row keeps
// the normalized fields shared by every platform plus a free-form JSON
// metadata blob for the platform-specific extras (live flag, counts, ...).
type Content struct {
	ID           uint        `json:"id"           gorm:"primaryKey;autoIncrement"`
	StreamerID   uint        `json:"streamerId"   gorm:"not null;index:idx_streamer_contents"`
	Type         ContentType `json:"type"         gorm:"type:varchar(32);not null"`
	Title        string      `json:"title"        gorm:"type:text;not null"`
	Description  string      `json:"description,omitempty"  gorm:"type:text"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty" gorm:"type:text"`
	ContentURL   string      `json:"contentUrl"   gorm:"type:text;not null"`
	PublishedAt  time.Time   `json:"publishedAt"  gorm:"not null;index:idx_streamer_contents,priority:2"`
	Metadata     string      `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt    time.Time   `json:"createdAt"`

	// Streamer is the owning profile. Contents are cascade-deleted if the
	// streamer row is removed.
	Streamer Streamer `json:"-" gorm:"foreignKey:StreamerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Content.
func (Content) TableName() string { return "contents" }

// User is kept from the original site's (unused) account tables. No auth
// endpoint is exposed; the repo functions exist so the schema stays complete.
type User struct {
	ID       uint   `json:"id"       gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" gorm:"type:varchar(64);not null;uniqueIndex"`
	Password string `json:"-"        gorm:"type:varchar(128);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }
