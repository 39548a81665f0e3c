package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps calls to the transcript service backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Health checks that the service is up
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	path := "/health"

	var out HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetTranscript fetches the caption segments for a video
func (c *Client) GetTranscript(ctx context.Context, req *TranscriptRequest) (*TranscriptResponse, error) {
	path := "/transcript"

	var out TranscriptResponse
	if err := c.doJSON(ctx, http.MethodPost, path, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// doJSON is a helper to perform JSON requests to the backend
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	// Create the request
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	// Perform the request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// On error, surface the server's message when the body carries one
		b, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if jsonErr := json.Unmarshal(b, &apiErr); jsonErr == nil && apiErr.Error != "" {
			return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("backend '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	// If no output expected, return early
	if out == nil {
		return nil
	}

	// Decode the response body into the output struct
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}
