package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Service: "YouTube Transcript Service"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	health, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "YouTube Transcript Service", health.Service)
}

func TestClientGetTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transcript", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Verify the request body round-trips the DTO
		var req TranscriptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dQw4w9WgXcQ", req.VideoID)
		assert.Equal(t, "de", req.Lang)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TranscriptResponse{
			Success: true,
			Transcript: []TranscriptSegment{
				{Text: "Hello world", Offset: 80, Duration: 2360},
			},
			Count: 1,
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.GetTranscript(context.Background(), &TranscriptRequest{VideoID: "dQw4w9WgXcQ", Lang: "de"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Transcript, 1)
	assert.Equal(t, "Hello world", resp.Transcript[0].Text)
	assert.Equal(t, int64(80), resp.Transcript[0].Offset)
	assert.Equal(t, int64(2360), resp.Transcript[0].Duration)
}

func TestClientGetTranscriptError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "This video has transcripts disabled"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetTranscript(context.Background(), &TranscriptRequest{VideoID: "dQw4w9WgXcQ"})
	require.Error(t, err)

	// The server's message should survive into the returned error
	assert.Contains(t, err.Error(), "This video has transcripts disabled")
	assert.Contains(t, err.Error(), "404")
}

func TestClientLangOmittedWhenEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

		assert.Contains(t, raw, "videoId")
		assert.NotContains(t, raw, "lang")

		json.NewEncoder(w).Encode(TranscriptResponse{Success: true, Transcript: []TranscriptSegment{}, Count: 0})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetTranscript(context.Background(), &TranscriptRequest{VideoID: "abc123"})
	require.NoError(t, err)
}
