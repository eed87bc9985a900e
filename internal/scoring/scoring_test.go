package scoring

import "testing"

func TestDelta_Generated(t *testing.T) {
	tests := []struct {
		quality Quality
		want    int
	}{
		{QualityOptimal, 25},
		{QualitySuboptimal, 10},
		{QualityPoor, 0},
	}
	for _, tt := range tests {
		if got := StrategyGenerated.Delta(tt.quality); got != tt.want {
			t.Errorf("Generated.Delta(%s) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestDelta_Library(t *testing.T) {
	tests := []struct {
		quality Quality
		want    int
	}{
		{QualityOptimal, 10},
		{QualitySuboptimal, 3},
		{QualityPoor, -5},
	}
	for _, tt := range tests {
		if got := StrategyLibrary.Delta(tt.quality); got != tt.want {
			t.Errorf("Library.Delta(%s) = %d, want %d", tt.quality, got, tt.want)
		}
	}
}

func TestParseQuality_UnknownDegradesToPoor(t *testing.T) {
	if got := ParseQuality("excellent"); got != QualityPoor {
		t.Errorf("ParseQuality(excellent) = %s, want poor", got)
	}
	if got := ParseQuality("optimal"); got != QualityOptimal {
		t.Errorf("ParseQuality(optimal) = %s, want optimal", got)
	}
}

func TestMaxScore_CappedAtFourSteps(t *testing.T) {
	if got := StrategyGenerated.MaxScore(4); got != 100 {
		t.Errorf("Generated.MaxScore(4) = %d, want 100", got)
	}
	if got := StrategyGenerated.MaxScore(7); got != 100 {
		t.Errorf("Generated.MaxScore(7) = %d, want 100 (capped)", got)
	}
	if got := StrategyLibrary.MaxScore(4); got != 40 {
		t.Errorf("Library.MaxScore(4) = %d, want 40", got)
	}
	if got := StrategyGenerated.MaxScore(0); got != 0 {
		t.Errorf("Generated.MaxScore(0) = %d, want 0", got)
	}
}

func TestFullSession_GeneratedScoring(t *testing.T) {
	// A four-step session: optimal, suboptimal, poor, optimal.
	qualities := []Quality{QualityOptimal, QualitySuboptimal, QualityPoor, QualityOptimal}
	score := 0
	for _, q := range qualities {
		score += StrategyGenerated.Delta(q)
	}
	if score != 60 {
		t.Errorf("session score = %d, want 60", score)
	}
	if max := StrategyGenerated.MaxScore(len(qualities)); max != 100 {
		t.Errorf("session max = %d, want 100", max)
	}
}

func TestClassifyOutcome_Identity(t *testing.T) {
	for _, q := range []Quality{QualityOptimal, QualitySuboptimal, QualityPoor} {
		if got := ClassifyOutcome(q); got != q {
			t.Errorf("ClassifyOutcome(%s) = %s, want identity", q, got)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		maxScore int
		want     Outcome
	}{
		{"perfect", 100, 100, OutcomeExcellent},
		{"eighty percent", 80, 100, OutcomeExcellent},
		{"sixty percent", 60, 100, OutcomeGood},
		{"fifty percent", 50, 100, OutcomeGood},
		{"below half", 30, 100, OutcomeNeedsWork},
		{"negative library score", -5, 40, OutcomeNeedsWork},
		{"zero max", 0, 0, OutcomeNeedsWork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(tt.score, tt.maxScore); got != tt.want {
				t.Errorf("Grade(%d, %d) = %s, want %s", tt.score, tt.maxScore, got, tt.want)
			}
		})
	}
}
