package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/fdtools/closure"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Closure cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheTTL           time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxAttributes   int
	MaxDependencies int

	// Closure tool paging.
	ClosureLimit    int
	MaxClosureLines int

	// BCNF tool defaults.
	BCNFTrace bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from FDTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("FDTOOLS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("FDTOOLS_CACHE_MAX_SIZE", 32),
		CacheTTL:           envDuration("FDTOOLS_CACHE_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("FDTOOLS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxAttributes:      envInt("FDTOOLS_MAX_ATTRIBUTES", closure.DefaultMaxAttributes),
		MaxDependencies:    envInt("FDTOOLS_MAX_DEPENDENCIES", 64),
		ClosureLimit:       envInt("FDTOOLS_CLOSURE_LIMIT", 100),
		MaxClosureLines:    envInt("FDTOOLS_MAX_CLOSURE_LINES", 1000),
		BCNFTrace:          envBool("FDTOOLS_BCNF_TRACE", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
