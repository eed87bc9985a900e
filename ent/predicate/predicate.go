// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// DecisionEvent is the predicate function for decisionevent builders.
type DecisionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SimulationEvent is the predicate function for simulationevent builders.
type SimulationEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// XPEvent is the predicate function for xpevent builders.
type XPEvent func(*sql.Selector)
