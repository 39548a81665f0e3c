package transcript_module

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/ethanbaker/transcript-service/internal/youtube"
	"github.com/ethanbaker/transcript-service/pkg/sdk"
	"github.com/ethanbaker/transcript-service/pkg/utils"
)

// Fetcher retrieves raw caption segments for a video
type Fetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) ([]youtube.Segment, error)
}

// TranscriptService resolves caption tracks and normalizes their timings
type TranscriptService struct {
	fetcher Fetcher
}

var transcriptService *TranscriptService

/** ---- INIT ---- */

// Init creates a new transcript service
func Init(cfg *utils.Config) error {
	opts := []youtube.Option{
		youtube.WithHTTPClient(newHTTPClient(cfg)),
	}

	// Allow pointing the client at a proxy or a local fixture server
	if baseURL := cfg.Get("YOUTUBE_BASE_URL"); baseURL != "" {
		opts = append(opts, youtube.WithBaseURL(baseURL))
	}

	transcriptService = &TranscriptService{
		fetcher: youtube.NewClient(opts...),
	}

	return nil
}

// newHTTPClient builds the upstream HTTP client. The timeout is opt-in;
// left unset, the transport's default network behavior applies.
func newHTTPClient(cfg *utils.Config) *http.Client {
	client := &http.Client{}
	if secs := cfg.GetIntWithDefault("YOUTUBE_TIMEOUT_SECONDS", 0); secs > 0 {
		client.Timeout = time.Duration(secs) * time.Second
	}
	return client
}

/** ---- SERVICE METHODS ---- */

// GetTranscript fetches caption segments for a video and converts their
// timings from fractional seconds to integer milliseconds
func (s *TranscriptService) GetTranscript(ctx context.Context, videoID string, lang string) ([]sdk.TranscriptSegment, error) {
	// The requested language first, English always appended as the fallback,
	// even when that duplicates an "en" request
	if lang == "" {
		lang = "en"
	}
	languages := []string{lang, "en"}

	raw, err := s.fetcher.Fetch(ctx, videoID, languages)
	if err != nil {
		return nil, err
	}

	// An empty transcript must serialize as [] rather than null
	segments := make([]sdk.TranscriptSegment, 0, len(raw))
	for _, seg := range raw {
		segments = append(segments, sdk.TranscriptSegment{
			Text:     seg.Text,
			Offset:   int64(math.Floor(seg.Start * 1000)),
			Duration: int64(math.Floor(seg.Duration * 1000)),
		})
	}

	return segments, nil
}
