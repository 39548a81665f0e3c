package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// userAgent mirrors a desktop Chrome build; YouTube serves the full watch
// page markup (including ytInitialPlayerResponse) to browser agents.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// playerResponseMarker precedes the player response JSON in watch page HTML.
const playerResponseMarker = "ytInitialPlayerResponse = "

// maxWatchPageBytes caps how much of the watch page is read.
const maxWatchPageBytes = 6 * 1024 * 1024

// fetchCaptionTracks downloads the watch page and extracts the caption
// track list from the embedded player response.
func (c *Client) fetchCaptionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	watchURL := c.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWatchPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	idx := strings.Index(string(body), playerResponseMarker)
	if idx < 0 {
		return nil, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(playerResponseMarker):])
	if jsonData == nil {
		return nil, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}

	var player playerResponse
	if err := json.Unmarshal(jsonData, &player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	return captionTracksOf(&player)
}

// captionTracksOf classifies the player response: unplayable videos are a
// generic failure carrying the upstream reason, playable videos without
// caption tracks have captions disabled.
func captionTracksOf(player *playerResponse) ([]captionTrack, error) {
	if ps := player.PlayabilityStatus; ps != nil {
		switch ps.Status {
		case "", "OK":
		default:
			// ERROR, LOGIN_REQUIRED, UNPLAYABLE, and any other non-OK status
			reason := ps.Reason
			if reason == "" {
				reason = ps.Status
			}
			return nil, fmt.Errorf("video is not playable: %s", reason)
		}
	}
	if player.Captions == nil {
		return nil, ErrCaptionsDisabled
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrCaptionsDisabled
	}
	return tracks, nil
}

// selectTrack returns the first track matching the ordered language
// preference list. Within one language a manually created track wins over
// an auto-generated ("asr") one; across languages the list order rules.
func selectTrack(tracks []captionTrack, languages []string) (captionTrack, error) {
	for _, lang := range languages {
		var generated *captionTrack
		for i := range tracks {
			t := &tracks[i]
			if t.LanguageCode != lang {
				continue
			}
			if t.Kind != "asr" {
				return *t, nil
			}
			if generated == nil {
				generated = t
			}
		}
		if generated != nil {
			return *generated, nil
		}
	}
	return captionTrack{}, ErrNoTranscript
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by
// tracking brace depth outside string literals.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr := false
	var prev byte
	for i, c := range b {
		if inStr {
			if c == '"' && prev != '\\' {
				inStr = false
			}
		} else {
			switch c {
			case '"':
				inStr = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return b[:i+1]
				}
			}
		}
		prev = c
	}
	return nil
}
