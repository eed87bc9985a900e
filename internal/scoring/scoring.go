// Package scoring maps decision quality to score deltas for clinical
// simulation sessions.
package scoring

// Quality grades a single decision within a simulation step.
type Quality string

const (
	QualityOptimal    Quality = "optimal"
	QualitySuboptimal Quality = "suboptimal"
	QualityPoor       Quality = "poor"
)

// ParseQuality normalizes a quality label. Unknown labels degrade to
// QualityPoor rather than failing the step.
func ParseQuality(s string) Quality {
	switch Quality(s) {
	case QualityOptimal, QualitySuboptimal, QualityPoor:
		return Quality(s)
	default:
		return QualityPoor
	}
}

// Strategy maps decision quality to a score delta. Generated scenarios
// reward more generously than library ones; library scenarios are the
// only place a decision can cost points.
type Strategy string

const (
	StrategyGenerated Strategy = "generated"
	StrategyLibrary   Strategy = "library"
)

// MaxSteps caps the number of scored decisions per session.
const MaxSteps = 4

// Delta returns the score change for a decision of the given quality.
func (s Strategy) Delta(q Quality) int {
	switch s {
	case StrategyLibrary:
		switch q {
		case QualityOptimal:
			return 10
		case QualitySuboptimal:
			return 3
		default:
			return -5
		}
	default:
		switch q {
		case QualityOptimal:
			return 25
		case QualitySuboptimal:
			return 10
		default:
			return 0
		}
	}
}

// StepMax returns the best possible delta for a single step.
func (s Strategy) StepMax() int {
	return s.Delta(QualityOptimal)
}

// MaxScore returns the best possible total for a session with the given
// number of played steps. Steps beyond the cap are not scored.
func (s Strategy) MaxScore(steps int) int {
	if steps > MaxSteps {
		steps = MaxSteps
	}
	if steps < 0 {
		steps = 0
	}
	return steps * s.StepMax()
}

// ClassifyOutcome maps a decision's quality tag to the quality recorded
// in history. Today it is a pass-through; it exists as a seam so a
// richer scorer could derive quality from more signals without changing
// callers.
func ClassifyOutcome(q Quality) Quality {
	return q
}

// Outcome summarizes how a completed session went relative to its ceiling.
type Outcome string

const (
	OutcomeExcellent Outcome = "excellent" // >= 80% of max
	OutcomeGood      Outcome = "good"      // >= 50% of max
	OutcomeNeedsWork Outcome = "needs-work"
)

// Grade buckets a final score against the session ceiling.
// A non-positive ceiling grades as needs-work.
func Grade(score, maxScore int) Outcome {
	if maxScore <= 0 {
		return OutcomeNeedsWork
	}
	pct := float64(score) / float64(maxScore)
	switch {
	case pct >= 0.8:
		return OutcomeExcellent
	case pct >= 0.5:
		return OutcomeGood
	default:
		return OutcomeNeedsWork
	}
}
