package components

import (
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(50, 100, 10)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Errorf("expected 5 filled cells, got %d", got)
	}
	if got := strings.Count(bar, "░"); got != 5 {
		t.Errorf("expected 5 empty cells, got %d", got)
	}
}

func TestProgressBarBounds(t *testing.T) {
	if ProgressBar(1, 0, 10) != "" {
		t.Error("zero total renders nothing")
	}
	if ProgressBar(1, 10, 0) != "" {
		t.Error("zero width renders nothing")
	}

	// Overshoot and negative progress clamp to the bar.
	full := ProgressBar(200, 100, 10)
	if strings.Count(full, "█") != 10 || strings.Count(full, "░") != 0 {
		t.Errorf("overshoot should clamp to full, got %q", full)
	}
	empty := ProgressBar(-5, 100, 10)
	if strings.Count(empty, "█") != 0 || strings.Count(empty, "░") != 10 {
		t.Errorf("negative progress should clamp to empty, got %q", empty)
	}
}
