package server

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/imaging"
	"github.com/ironsheep/anybitmap/internal/imgerr"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel       = "ANYBITMAP_LOG_LEVEL"
	EnvMaxPixels      = "ANYBITMAP_MAX_PIXELS"
	EnvDefaultQuality = "ANYBITMAP_DEFAULT_QUALITY"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is "debug" for verbose logging; anything else logs errors only.
	LogLevel string

	// MaxPixels caps every decoded or allocated canvas (width*height).
	MaxPixels int64

	// DefaultQuality is the encode quality used when a tool call gives none.
	DefaultQuality int
}

// DefaultConfig returns the settings used when no environment is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:       "info",
		MaxPixels:      imaging.DefaultMaxPixels,
		DefaultQuality: codec.DefaultQuality,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies any ANYBITMAP_*
// variables that are set. Malformed values are reported, not ignored.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvMaxPixels); v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s=%q must be a positive integer: %w", EnvMaxPixels, v, imgerr.ErrInvalidArgument)
		}
		cfg.MaxPixels = n
	}

	if v := os.Getenv(EnvDefaultQuality); v != "" {
		q, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || q < 0 || q > 100 {
			return cfg, fmt.Errorf("%s=%q must be between 0 and 100: %w", EnvDefaultQuality, v, imgerr.ErrInvalidArgument)
		}
		cfg.DefaultQuality = q
	}

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}
