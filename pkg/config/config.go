// Package config loads the engine configuration for embedding processes.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything an embedding process needs to bootstrap the
// engine: where the state document lives and how to log.
type Config struct {
	// DataFile is the path of the persisted state document.
	DataFile string

	// LogLevel is a zerolog level name, e.g. "debug" or "info".
	LogLevel string

	// LogFormat is "human" for console output, anything else means JSON.
	LogFormat string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DataFile:  getEnv("LEDGER_DATA_FILE", filepath.Join("data", "ledger.json")),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", ""),
	}
}

// Logger builds the process logger according to the configuration.
func (c *Config) Logger() zerolog.Logger {
	output := io.Writer(os.Stdout)
	if c.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
