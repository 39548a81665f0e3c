package main

import (
	"github.com/ethanbaker/transcript-service/internal/api"
	"github.com/ethanbaker/transcript-service/pkg/utils"
)

// Start the API server
func main() {
	// Find env file
	envFile := utils.GetEnvWithDefault("ENV_FILE", ".env")

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	// Start
	api.Start(cfg)
}
