package mastery

// Level represents a topic's position in the mastery ladder.
type Level string

const (
	LevelNotStarted Level = "not-started"
	LevelIntroduced Level = "introduced"
	LevelFamiliar   Level = "familiar"
	LevelProficient Level = "proficient"
	LevelMastered   Level = "mastered"
)

// Point thresholds for each level. A topic's level is the highest
// threshold its points meet.
const (
	introducedPoints = 1
	familiarPoints   = 3
	proficientPoints = 5
	masteredPoints   = 8
)

// LevelForPoints maps accumulated points to a mastery level.
func LevelForPoints(points int) Level {
	switch {
	case points >= masteredPoints:
		return LevelMastered
	case points >= proficientPoints:
		return LevelProficient
	case points >= familiarPoints:
		return LevelFamiliar
	case points >= introducedPoints:
		return LevelIntroduced
	default:
		return LevelNotStarted
	}
}

// LevelIndex returns the ordinal position of a level, 0 through 4.
// Used by review scheduling to pick intervals.
func LevelIndex(l Level) int {
	switch l {
	case LevelIntroduced:
		return 1
	case LevelFamiliar:
		return 2
	case LevelProficient:
		return 3
	case LevelMastered:
		return 4
	default:
		return 0
	}
}
