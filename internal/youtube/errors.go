package youtube

import "errors"

// Classified retrieval failures. Callers match these with errors.Is to
// tell the two domain outcomes apart from generic upstream errors.
var (
	// ErrCaptionsDisabled means the video is playable but exposes no
	// caption tracks at all.
	ErrCaptionsDisabled = errors.New("captions are disabled for this video")

	// ErrNoTranscript means caption tracks exist, but none matches the
	// requested languages.
	ErrNoTranscript = errors.New("no caption track matches the requested languages")
)
