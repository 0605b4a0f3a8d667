package config

import (
	"testing"

	"github.com/anika/sprout/internal/engine"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SPROUT_CHILD", "SPROUT_CHILD_NAME", "SPROUT_AGE_GROUP",
		"SPROUT_RECOMMENDED_MIN", "SPROUT_BREAK_MIN",
		"SPROUT_BREAK_INTERVAL_MIN", "SPROUT_HISTORY_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ChildID != "default" {
		t.Errorf("ChildID = %q, want %q", cfg.ChildID, "default")
	}
	if cfg.AgeGroup != engine.Ages6To9 {
		t.Errorf("AgeGroup = %q, want %q", cfg.AgeGroup, engine.Ages6To9)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("HistoryLimit = %d, want 20", cfg.HistoryLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SPROUT_CHILD", "mia")
	t.Setenv("SPROUT_AGE_GROUP", "ages10to12")
	t.Setenv("SPROUT_RECOMMENDED_MIN", "45")
	t.Setenv("SPROUT_BREAK_MIN", "0")

	cfg := Load()

	if cfg.ChildID != "mia" {
		t.Errorf("ChildID = %q, want %q", cfg.ChildID, "mia")
	}
	if cfg.AgeGroup != engine.Ages10To12 {
		t.Errorf("AgeGroup = %q, want %q", cfg.AgeGroup, engine.Ages10To12)
	}

	tc := cfg.Timing()
	if tc.RecommendedDuration != 45 {
		t.Errorf("RecommendedDuration = %d, want 45", tc.RecommendedDuration)
	}
	if tc.BreakDuration != 0 {
		t.Errorf("BreakDuration = %d, want 0 (breaks disabled)", tc.BreakDuration)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SPROUT_AGE_GROUP", "grownups")
	t.Setenv("SPROUT_RECOMMENDED_MIN", "soon")

	cfg := Load()

	if cfg.AgeGroup != engine.Ages6To9 {
		t.Errorf("AgeGroup = %q, want fallback %q", cfg.AgeGroup, engine.Ages6To9)
	}
	if cfg.RecommendedMin != 0 {
		t.Errorf("RecommendedMin = %d, want 0", cfg.RecommendedMin)
	}
}
