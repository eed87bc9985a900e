package progress

import "testing"

func TestLevelFor(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{499, 3},
		{500, 4},
		{1000, 5},
		{1750, 6},
		{2750, 7},
		{4000, 8},
		{5500, 9},
		{7499, 9},
		{7500, 10},
		{100000, 10},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.xp); got != tt.want {
			t.Errorf("LevelFor(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestNextLevel(t *testing.T) {
	if got := NextLevel(0); got != 2 {
		t.Errorf("NextLevel(0) = %d, want 2", got)
	}
	if got := NextLevel(7500); got != 0 {
		t.Errorf("NextLevel(7500) = %d, want 0 (at top)", got)
	}
}

func TestProgressPercent(t *testing.T) {
	// Level 1 spans 0..100.
	if got := ProgressPercent(0); got != 0 {
		t.Errorf("ProgressPercent(0) = %d, want 0", got)
	}
	if got := ProgressPercent(50); got != 50 {
		t.Errorf("ProgressPercent(50) = %d, want 50", got)
	}
	// Level 2 spans 100..250.
	if got := ProgressPercent(175); got != 50 {
		t.Errorf("ProgressPercent(175) = %d, want 50", got)
	}
	// Top level is always 100.
	if got := ProgressPercent(7500); got != 100 {
		t.Errorf("ProgressPercent(7500) = %d, want 100", got)
	}
	if got := ProgressPercent(99999); got != 100 {
		t.Errorf("ProgressPercent(99999) = %d, want 100", got)
	}
}

func TestLevelFor_MonotonicOverThresholds(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 8000; xp += 25 {
		level := LevelFor(xp)
		if level < prev {
			t.Fatalf("LevelFor(%d) = %d, decreased from %d", xp, level, prev)
		}
		prev = level
	}
}
