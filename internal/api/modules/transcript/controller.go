package transcript_module

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ethanbaker/transcript-service/internal/api/middleware"
	"github.com/ethanbaker/transcript-service/internal/youtube"
	"github.com/ethanbaker/transcript-service/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// GetTranscript handles POST requests to fetch a video's transcript
func GetTranscript(c *gin.Context) {
	logger := middleware.Logger(c)

	// Parse request body
	var req sdk.TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, sdk.ErrorResponse{Error: err.Error()})
		return
	}

	// videoId is the only required field
	if req.VideoID == "" {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: "videoId is required"})
		return
	}

	segments, err := transcriptService.GetTranscript(c.Request.Context(), req.VideoID, req.Lang)
	if err != nil {
		status, message := classifyError(err)
		logger.Warn("transcript fetch failed",
			slog.String("video_id", req.VideoID),
			slog.Int("status", status),
			slog.Any("error", err),
		)
		c.JSON(status, sdk.ErrorResponse{Error: message})
		return
	}

	attrs := []any{
		slog.String("video_id", req.VideoID),
		slog.Int("segments", len(segments)),
	}
	if len(segments) > 0 {
		attrs = append(attrs, slog.Group("first",
			slog.String("text", segments[0].Text),
			slog.Int64("offset", segments[0].Offset),
			slog.Int64("duration", segments[0].Duration),
		))
	}
	logger.Info("transcript fetched", attrs...)

	c.JSON(http.StatusOK, sdk.TranscriptResponse{
		Success:    true,
		Transcript: segments,
		Count:      len(segments),
	})
}

// classifyError maps retrieval failures to response codes and client-facing messages
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, youtube.ErrCaptionsDisabled):
		return http.StatusNotFound, "This video has transcripts disabled"
	case errors.Is(err, youtube.ErrNoTranscript):
		return http.StatusNotFound, "No captions available for this video"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
