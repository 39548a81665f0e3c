package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/ethanbaker/transcript-service/internal/youtube"
	"github.com/ethanbaker/transcript-service/pkg/utils"
)

// Fetch a video transcript from the command line for quick inspection
func main() {
	video := flag.String("video", "", "YouTube video ID to fetch")
	lang := flag.String("lang", "en", "preferred caption language (falls back to en)")
	timeout := flag.Int("timeout", 0, "upstream timeout in seconds (0 uses the transport default)")
	flag.Parse()

	if *video == "" {
		log.Fatal("[COMMANDLINE]: -video is required")
	}

	// Find env file
	envFile := utils.GetEnvWithDefault("ENV_FILE", ".env")

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Build the caption client, honoring any configured upstream override
	httpClient := &http.Client{}
	if *timeout > 0 {
		httpClient.Timeout = time.Duration(*timeout) * time.Second
	}
	opts := []youtube.Option{
		youtube.WithHTTPClient(httpClient),
	}
	if baseURL := cfg.Get("YOUTUBE_BASE_URL"); baseURL != "" {
		opts = append(opts, youtube.WithBaseURL(baseURL))
	}
	client := youtube.NewClient(opts...)

	// English is always the fallback, even when it is also the request
	requested := *lang
	if requested == "" {
		requested = "en"
	}
	languages := []string{requested, "en"}

	segments, err := client.Fetch(context.Background(), *video, languages)
	if err != nil {
		log.Fatalf("[COMMANDLINE]: Failed to fetch transcript: %v", err)
	}

	for i, seg := range segments {
		fmt.Printf("%4d [%9.3fs] %s\n", i+1, seg.Start, seg.Text)
	}
}
