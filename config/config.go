// Package config loads application configuration from a .env file and
// environment variables.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// InputPath is the Billboard lyrics CSV.
	InputPath string
	// OutputDir receives the exported CSV tables.
	OutputDir string
	// ChartDir receives the rendered PNG charts.
	ChartDir string
	// SQLitePath is the optional feature database; empty disables it.
	SQLitePath string

	// PositiveLexiconPath / NegativeLexiconPath override the embedded
	// sentiment lexicon when both are set.
	PositiveLexiconPath string
	NegativeLexiconPath string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		InputPath:  getEnv("LYRICS_INPUT", "data/billboard_lyrics.csv"),
		OutputDir:  getEnv("OUTPUT_DIR", "output"),
		ChartDir:   getEnv("CHART_DIR", "output/charts"),
		SQLitePath: getEnv("SQLITE_PATH", ""),

		PositiveLexiconPath: getEnv("LEXICON_POSITIVE", ""),
		NegativeLexiconPath: getEnv("LEXICON_NEGATIVE", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
