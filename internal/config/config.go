package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/anika/sprout/internal/engine"
)

// Config holds the child profile and session defaults. Values come from
// a .env file (if present) and environment variables, with sensible
// defaults when missing or invalid.
type Config struct {
	ChildID   string
	ChildName string
	AgeGroup  engine.AgeGroup

	RecommendedMin   int
	BreakMin         int
	BreakIntervalMin int

	HistoryLimit int
}

// Load reads configuration from the environment.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		ChildID:          envOr("SPROUT_CHILD", "default"),
		ChildName:        envOr("SPROUT_CHILD_NAME", "Explorer"),
		AgeGroup:         parseAgeGroup(envOr("SPROUT_AGE_GROUP", string(engine.Ages6To9))),
		RecommendedMin:   envIntOr("SPROUT_RECOMMENDED_MIN", 0),
		BreakMin:         envIntOr("SPROUT_BREAK_MIN", -1),
		BreakIntervalMin: envIntOr("SPROUT_BREAK_INTERVAL_MIN", 0),
		HistoryLimit:     envIntOr("SPROUT_HISTORY_LIMIT", 20),
	}
}

// Timing resolves the session timing: age-group defaults overridden by
// any explicitly configured values.
func (c Config) Timing() engine.TimingConfig {
	tc := engine.DefaultTiming(c.AgeGroup)
	if c.RecommendedMin > 0 {
		tc.RecommendedDuration = c.RecommendedMin
	}
	if c.BreakMin >= 0 {
		tc.BreakDuration = c.BreakMin
	}
	if c.BreakIntervalMin > 0 {
		tc.BreakInterval = c.BreakIntervalMin
	}
	return tc
}

func parseAgeGroup(s string) engine.AgeGroup {
	switch engine.AgeGroup(s) {
	case engine.Ages3To5, engine.Ages6To9, engine.Ages10To12:
		return engine.AgeGroup(s)
	}
	return engine.Ages6To9
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
