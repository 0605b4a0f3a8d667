package components

import (
	"strings"
	"testing"
	"time"

	"github.com/anika/sprout/internal/ui/theme"
)

func TestCountdownBar_Clock(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{5 * time.Minute, "5:00"},
		{90 * time.Second, "1:30"},
		{42 * time.Second, "0:42"},
		{0, "0:00"},
		{-10 * time.Second, "0:00"}, // never negative
	}

	for _, tt := range tests {
		bar := NewCountdownBar("Time left", tt.remaining, 20*time.Minute, 60)
		if view := bar.View(); !strings.Contains(view, tt.want) {
			t.Errorf("View() for %v missing clock %q", tt.remaining, tt.want)
		}
	}
}

func TestCountdownBar_FillColor(t *testing.T) {
	full := NewCountdownBar("", 10*time.Minute, 20*time.Minute, 60)
	if full.fillColor() != theme.Secondary {
		t.Error("expected normal color with plenty of time")
	}

	lastMinute := NewCountdownBar("", 30*time.Second, 20*time.Minute, 60)
	if lastMinute.fillColor() != theme.Warning {
		t.Error("expected warning color inside the final minute")
	}

	expired := NewCountdownBar("", 0, 20*time.Minute, 60)
	if expired.fillColor() != theme.Error {
		t.Error("expected error color at zero")
	}
}

func TestCountdownBar_NarrowWidth(t *testing.T) {
	bar := NewCountdownBar("Time left", 5*time.Minute, 20*time.Minute, 10)
	if bar.View() == "" {
		t.Error("expected non-empty view at narrow width")
	}
}
