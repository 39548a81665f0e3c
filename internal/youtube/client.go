// Package youtube retrieves caption transcripts for public YouTube videos.
//
// The adapter scrapes the watch page for the embedded player response,
// selects a caption track matching the caller's language preferences, and
// downloads and normalizes the track payload. Failures are classified so
// callers can distinguish "captions disabled" and "no matching track"
// from everything else.
package youtube

import (
	"context"
	"log/slog"
	"net/http"
)

// Segment is one timed caption line as served by the source, with start
// and duration in fractional seconds.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Client fetches caption transcripts. Use NewClient; the zero value has
// no HTTP client or logger.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for all upstream calls.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithBaseURL points the client at a different watch page host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a caption retrieval client. Without options it uses
// an HTTP client with transport defaults and the default slog logger.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		logger:     slog.Default(),
		baseURL:    "https://www.youtube.com",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the caption segments of the first track matching the
// ordered language preference list. Duplicate entries in the list are
// permitted and simply re-check the same language. A single fetch attempt
// is made per call: no retries, no caching.
//
// Returns ErrCaptionsDisabled when the video exposes no caption tracks
// and ErrNoTranscript when no track matches languages; any other failure
// (network, unplayable video, malformed payload) is generic.
func (c *Client) Fetch(ctx context.Context, videoID string, languages []string) ([]Segment, error) {
	tracks, err := c.fetchCaptionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(tracks, languages)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("caption track selected",
		slog.String("video_id", videoID),
		slog.String("language", track.LanguageCode),
		slog.String("kind", track.Kind),
	)

	return c.fetchTrack(ctx, track.BaseURL)
}
