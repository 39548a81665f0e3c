package youtube

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTrack(t *testing.T) {
	tracks := []captionTrack{
		{BaseURL: "u-de", LanguageCode: "de"},
		{BaseURL: "u-en-asr", LanguageCode: "en", Kind: "asr"},
		{BaseURL: "u-en", LanguageCode: "en"},
		{BaseURL: "u-fr-asr", LanguageCode: "fr", Kind: "asr"},
	}

	tests := []struct {
		name      string
		languages []string
		wantURL   string
		wantErr   error
	}{
		{"manual wins within language", []string{"en"}, "u-en", nil},
		{"asr-only language", []string{"fr"}, "u-fr-asr", nil},
		{"earlier language asr beats later manual", []string{"fr", "de"}, "u-fr-asr", nil},
		{"fallback to second language", []string{"es", "de"}, "u-de", nil},
		{"duplicate entries tolerated", []string{"en", "en"}, "u-en", nil},
		{"no match", []string{"es", "pt"}, "", ErrNoTranscript},
		{"empty preference list", nil, "", ErrNoTranscript},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectTrack(tracks, tt.languages)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, got.BaseURL)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"flat object", `{"a":1};var next`, `{"a":1}`},
		{"nested objects", `{"a":{"b":{"c":2}},"d":3};`, `{"a":{"b":{"c":2}},"d":3}`},
		{"braces inside strings ignored", `{"a":"}{","b":1}`, `{"a":"}{","b":1}`},
		{"escaped quote inside string", `{"a":"say \"hi\"","b":2}`, `{"a":"say \"hi\"","b":2}`},
		{"not an object", `[1,2,3]`, ""},
		{"unterminated", `{"a":1`, ""},
		{"empty input", ``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJSON([]byte(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCaptionTracksOf(t *testing.T) {
	decode := func(t *testing.T, raw string) *playerResponse {
		t.Helper()
		var p playerResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &p))
		return &p
	}

	t.Run("playable with tracks", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[{"baseUrl":"u","languageCode":"en"}]}}}`)
		tracks, err := captionTracksOf(p)
		require.NoError(t, err)
		require.Len(t, tracks, 1)
		assert.Equal(t, "en", tracks[0].LanguageCode)
	})

	t.Run("missing captions section", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"OK"},"videoDetails":{}}`)
		_, err := captionTracksOf(p)
		assert.ErrorIs(t, err, ErrCaptionsDisabled)
	})

	t.Run("empty track list", func(t *testing.T) {
		p := decode(t, `{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[]}}}`)
		_, err := captionTracksOf(p)
		assert.ErrorIs(t, err, ErrCaptionsDisabled)
	})

	t.Run("unplayable carries reason", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`)
		_, err := captionTracksOf(p)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCaptionsDisabled)
		assert.Contains(t, err.Error(), "Video unavailable")
	})

	t.Run("login required is generic", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"LOGIN_REQUIRED","reason":"Sign in to confirm your age"}}`)
		_, err := captionTracksOf(p)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCaptionsDisabled)
		assert.NotErrorIs(t, err, ErrNoTranscript)
	})

	t.Run("region lock is generic, not disabled captions", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"UNPLAYABLE","reason":"The uploader has not made this video available in your country"}}`)
		_, err := captionTracksOf(p)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCaptionsDisabled)
		assert.Contains(t, err.Error(), "not made this video available")
	})

	t.Run("offline live stream is generic", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"LIVE_STREAM_OFFLINE"}}`)
		_, err := captionTracksOf(p)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCaptionsDisabled)
		assert.Contains(t, err.Error(), "LIVE_STREAM_OFFLINE")
	})

	t.Run("unplayable without reason falls back to status", func(t *testing.T) {
		p := decode(t, `{"playabilityStatus":{"status":"ERROR"}}`)
		_, err := captionTracksOf(p)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ERROR")
	})
}
