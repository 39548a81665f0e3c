package utils

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given .env files into the process environment and
// returns the combined environment as a map. Values already present in
// the environment are never overwritten.
func LoadEnv(files ...string) map[string]string {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			log.Printf("[UTILS]: Warning, could not load %s: %v", file, err)
		}
	}

	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			env[key] = value
		}
	}

	return env
}

// GetEnvWithDefault returns an environment variable value or a default if not set
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
