// Package spacedrep schedules topic reviews on an expanding interval
// ladder keyed to mastery level.
package spacedrep

import (
	"time"

	"github.com/kevinkeet/watershed/internal/mastery"
)

// levelIntervals holds the base review interval in days for each mastery
// level, indexed by mastery.LevelIndex.
var levelIntervals = []int{1, 1, 7, 14, 30}

// IntervalDays returns the base review interval for a mastery level.
func IntervalDays(level mastery.Level) int {
	return levelIntervals[mastery.LevelIndex(level)]
}

// ReviewInterval computes the interval to the next review. A correct
// answer uses the level's base interval; an incorrect one halves it,
// never dropping below one day.
func ReviewInterval(level mastery.Level, correct bool) int {
	days := IntervalDays(level)
	if !correct {
		days /= 2
		if days < 1 {
			days = 1
		}
	}
	return days
}

// NextReview computes the next review date. The interval anchors at the
// time of the answer being recorded, not the prior review.
func NextReview(level mastery.Level, correct bool, now time.Time) time.Time {
	return now.AddDate(0, 0, ReviewInterval(level, correct))
}

// IsDue reports whether a topic's review date has arrived. Topics with
// no scheduled review are always due.
func IsDue(rec *mastery.TopicRecord, now time.Time) bool {
	if rec.NextReview == nil {
		return true
	}
	return !rec.NextReview.After(now)
}

// Urgency buckets how overdue a topic is, 0 through 3. Topics not yet
// due score 0; a topic with no schedule at all scores the maximum.
func Urgency(rec *mastery.TopicRecord, now time.Time) int {
	if rec.NextReview == nil {
		return 3
	}
	if rec.NextReview.After(now) {
		return 0
	}
	overdue := now.Sub(*rec.NextReview)
	switch {
	case overdue < 3*24*time.Hour:
		return 1
	case overdue < 7*24*time.Hour:
		return 2
	default:
		return 3
	}
}
