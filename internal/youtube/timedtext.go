package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// maxTrackBytes caps how much of a caption payload is read. Sized so even
// word-level JSON3 tracks of multi-hour videos fit without truncation.
const maxTrackBytes = 16 * 1024 * 1024

// fetchTrack downloads a caption track payload and normalizes it into
// segments.
func (c *Client) fetchTrack(ctx context.Context, trackURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("caption track: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTrackBytes))
	if err != nil {
		return nil, fmt.Errorf("read caption track: %w", err)
	}
	return parseTrackPayload(body)
}

// parseTrackPayload dispatches on the payload shape: mapping-style JSON3
// documents start with '{', attribute-style timedtext XML with '<'. Both
// normalize into the same Segment slice.
func parseTrackPayload(body []byte) ([]Segment, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return nil, errors.New("empty caption payload")
	case trimmed[0] == '{':
		return parseJSON3(trimmed)
	case trimmed[0] == '<':
		return parseTimedText(trimmed)
	default:
		return nil, fmt.Errorf("unrecognized caption payload (starts with %q)", trimmed[0])
	}
}

// parseTimedText parses the legacy XML format:
// <transcript><text start="12.4" dur="3.1">…</text></transcript>.
// A missing dur attribute means zero duration.
func parseTimedText(body []byte) ([]Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Lines))
	for _, line := range doc.Lines {
		if line.Text == "" {
			continue
		}
		start, err := strconv.ParseFloat(line.Start, 64)
		if err != nil {
			return nil, fmt.Errorf("timedtext start %q: %w", line.Start, err)
		}
		var dur float64
		if line.Dur != "" {
			dur, err = strconv.ParseFloat(line.Dur, 64)
			if err != nil {
				return nil, fmt.Errorf("timedtext dur %q: %w", line.Dur, err)
			}
		}
		segments = append(segments, Segment{
			Text:     cleanText(line.Text),
			Start:    start,
			Duration: dur,
		})
	}
	return segments, nil
}

// parseJSON3 parses the json3 format served when a track URL carries
// fmt=json3: millisecond events, each with utf8 text runs. Events without
// text (window styling, bare newlines) are skipped.
func parseJSON3(body []byte) ([]Segment, error) {
	var doc json3Doc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse json3: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Events))
	for _, ev := range doc.Events {
		if len(ev.Segs) == 0 {
			continue
		}
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(ev.TStartMs) / 1000,
			Duration: float64(ev.DDurationMs) / 1000,
		})
	}
	return segments, nil
}

var formattingTagRe = regexp.MustCompile(`<[^>]+>`)

// cleanText unescapes HTML entities left in caption text and strips
// inline formatting tags such as <i> and <b>.
func cleanText(s string) string {
	return strings.TrimSpace(formattingTagRe.ReplaceAllString(html.UnescapeString(s), ""))
}
