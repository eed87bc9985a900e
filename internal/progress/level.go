// Package progress converts learner actions into XP, levels, daily-goal
// tracking, and achievement unlocks.
package progress

import "math"

// levelThresholds is the ascending XP table. Level N (1-based) starts at
// levelThresholds[N-1].
var levelThresholds = []int{0, 100, 250, 500, 1000, 1750, 2750, 4000, 5500, 7500}

// MaxLevel is the highest reachable level.
const MaxLevel = 10

// LevelFor returns the highest level whose threshold is at or below xp.
// Zero XP is level 1.
func LevelFor(xp int) int {
	level := 1
	for i, threshold := range levelThresholds {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// NextLevel returns the level above the current one, or 0 at the top.
func NextLevel(xp int) int {
	level := LevelFor(xp)
	if level >= MaxLevel {
		return 0
	}
	return level + 1
}

// LevelThreshold returns the XP floor for a level (1-based).
func LevelThreshold(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelThresholds[level-1]
}

// ProgressPercent returns how far through the current level band the XP
// total is, rounded to the nearest whole percent. At the top level it
// always returns 100.
func ProgressPercent(xp int) int {
	level := LevelFor(xp)
	if level >= MaxLevel {
		return 100
	}
	current := LevelThreshold(level)
	next := LevelThreshold(level + 1)
	return int(math.Round(100 * float64(xp-current) / float64(next-current)))
}
