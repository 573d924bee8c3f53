// Streamer HTTP handlers.
//
// This file exposes REST endpoints for streamer resources:
//   - GET /streamers                          (list all seeded profiles)
//   - GET /streamers/{slug}                   (single profile)
//   - GET /streamers/{slug}/twitch    (latest Twitch stream or VOD)
//   - GET /streamers/{slug}/youtube   (latest YouTube upload)
//
// Handlers are transport-thin: they resolve the streamer, call application
// services, and translate results into HTTP responses. Upstream failures are
// logged with request context but never leaked to clients.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/creatorhubtz/creatorhub-backend/internal/domain"
	"github.com/creatorhubtz/creatorhub-backend/internal/http/middleware"
	"github.com/creatorhubtz/creatorhub-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// StreamerService defines profile lookup operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type StreamerService interface {
	// List returns every streamer profile in creation order.
	List(ctx context.Context) ([]domain.Streamer, error)
	// GetBySlug returns the profile whose slug matches exactly.
	GetBySlug(ctx context.Context, slug string) (*domain.Streamer, error)
}

// ContentService defines latest-content retrieval for a single platform.
//
// Both the Twitch and YouTube services satisfy this contract; handlers pick
// the instance matching the requested platform segment.
type ContentService interface {
	// FetchLatest returns the most recent content summary for the streamer,
	// serving from cache when a fresh entry exists.
	FetchLatest(ctx context.Context, s *domain.Streamer) (*domain.ContentSummary, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for streamer profiles and platform content.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	streamerSvc StreamerService
	twitchSvc   ContentService
	youtubeSvc  ContentService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(streamerSvc StreamerService, twitchSvc, youtubeSvc ContentService) *Handlers {
	return &Handlers{streamerSvc: streamerSvc, twitchSvc: twitchSvc, youtubeSvc: youtubeSvc}
}

//
// Endpoints
//

// ListStreamers handles GET /streamers.
//
// Returns the full roster as a JSON array, ordered by creation.
func (h *Handlers) ListStreamers(c *gin.Context) {
	streamers, err := h.streamerSvc.List(c.Request.Context())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("list streamers failed")
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list streamers")
		return
	}
	ok(c, http.StatusOK, streamers)
}

// GetStreamer handles GET /streamers/{slug}.
func (h *Handlers) GetStreamer(c *gin.Context) {
	s, done := h.resolveStreamer(c)
	if done {
		return
	}
	ok(c, http.StatusOK, s)
}

// GetTwitchContent handles GET /streamers/{slug}/twitch.
func (h *Handlers) GetTwitchContent(c *gin.Context) {
	h.platformContent(c, h.twitchSvc)
}

// GetYouTubeContent handles GET /streamers/{slug}/youtube.
func (h *Handlers) GetYouTubeContent(c *gin.Context) {
	h.platformContent(c, h.youtubeSvc)
}

// platformContent resolves the streamer from the path, delegates to the
// platform service, and maps the service error taxonomy onto HTTP statuses:
// not-found sentinels become 404, anything else a generic 500.
func (h *Handlers) platformContent(c *gin.Context, svc ContentService) {
	s, done := h.resolveStreamer(c)
	if done {
		return
	}

	summary, err := svc.FetchLatest(c.Request.Context(), s)
	if err != nil {
		if services.IsNotFound(err) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "no recent content found")
			return
		}
		middleware.LoggerFrom(c).Error().
			Err(err).
			Str("slug", s.Slug).
			Msg("fetch latest content failed")
		fail(c, http.StatusInternalServerError, ErrCodeUpstreamError, "could not fetch latest content")
		return
	}
	ok(c, http.StatusOK, summary)
}

// resolveStreamer loads the streamer named by the :slug path parameter.
// When it returns done=true the response has already been written.
func (h *Handlers) resolveStreamer(c *gin.Context) (*domain.Streamer, bool) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "missing streamer slug")
		return nil, true
	}

	s, err := h.streamerSvc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if services.IsNotFound(err) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "streamer not found")
			return nil, true
		}
		middleware.LoggerFrom(c).Error().Err(err).Str("slug", slug).Msg("streamer lookup failed")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load streamer")
		return nil, true
	}
	return s, false
}
