package sdk

/** Requests */

// TranscriptRequest represents the request body for fetching a transcript
type TranscriptRequest struct {
	VideoID string `json:"videoId"`        // YouTube video ID to fetch captions for
	Lang    string `json:"lang,omitempty"` // Preferred caption language (optional, defaults to "en")
}

/** Responses */

// TranscriptSegment represents a single caption line with millisecond timing
type TranscriptSegment struct {
	Text     string `json:"text"`     // Caption text with markup stripped
	Offset   int64  `json:"offset"`   // Start time in milliseconds
	Duration int64  `json:"duration"` // Display duration in milliseconds
}

// TranscriptResponse represents the successful transcript response
type TranscriptResponse struct {
	Success    bool                `json:"success"`    // Always true on success
	Transcript []TranscriptSegment `json:"transcript"` // Segments in playback order
	Count      int                 `json:"count"`      // Number of segments
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`  // "ok" when the service is up
	Service string `json:"service"` // Human-readable service name
}

// ErrorResponse represents any failed response
type ErrorResponse struct {
	Error string `json:"error"` // Human-readable error message
}
