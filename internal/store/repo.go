package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version  int                  `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
	Mastery  *MasterySnapshotData  `json:"mastery,omitempty"`
}

// ProgressSnapshotData is the persisted form of the learner progress record.
type ProgressSnapshotData struct {
	XP           int               `json:"xp"`
	Achievements []string          `json:"achievements"`
	Daily        DailyProgressData `json:"daily_progress"`
	Stats        StatsData         `json:"stats"`
	LoginStreak  int               `json:"login_streak"`
	LastActive   string            `json:"last_active,omitempty"`
}

// DailyProgressData tracks activity within a single calendar day.
type DailyProgressData struct {
	Date       string `json:"date"` // YYYY-MM-DD
	XP         int    `json:"xp"`
	Quizzes    int    `json:"quizzes"`
	Activities int    `json:"activities"`
	Histories  int    `json:"histories"`
}

// StatsData holds the lifetime counters driving achievement rules.
type StatsData struct {
	CasesCompleted         int `json:"cases_completed"`
	HistoriesCompleted     int `json:"histories_completed"`
	PresentationsCompleted int `json:"presentations_completed"`
	QuizStreak             int `json:"quiz_streak"`
	QuizCorrectTotal       int `json:"quiz_correct_total"`
}

// MasterySnapshotData is the persisted form of all topic mastery records.
type MasterySnapshotData struct {
	Topics map[string]*TopicMasteryData `json:"topics"`
}

// TopicMasteryData is the persisted form of a single topic's record.
// Review dates are RFC3339 strings; nil means absent.
type TopicMasteryData struct {
	Topic      string  `json:"topic"`
	Points     int     `json:"points"`
	LastReview *string `json:"last_review,omitempty"`
	NextReview *string `json:"next_review,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single backend request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored backend request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsageStat aggregates backend usage per purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsageStat aggregates backend usage per model, for cost estimates.
type LLMModelUsageStat struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// XPEventData captures a single XP award.
type XPEventData struct {
	Amount     int
	Activity   string
	Reason     string
	TotalAfter int
}

// AchievementEventData captures an achievement unlock.
type AchievementEventData struct {
	AchievementID string
	Name          string
	XPReward      int
}

// SimulationEventData captures a simulation lifecycle event.
type SimulationEventData struct {
	SessionID    string
	Action       string // start, end, abandon
	ScenarioID   string
	ScenarioType string
	Score        int
	MaxScore     int
	Steps        int
}

// SimulationSummaryRecord summarizes one completed simulation session.
type SimulationSummaryRecord struct {
	SessionID    string
	Timestamp    time.Time
	ScenarioID   string
	ScenarioType string
	Score        int
	MaxScore     int
	Steps        int
}

// DecisionEventData captures one scored decision inside a session.
type DecisionEventData struct {
	SessionID string
	Step      int
	Action    string
	Quality   string
	Delta     int
}

// MasteryEventData captures a topic point change.
type MasteryEventData struct {
	Topic       string
	Delta       int
	PointsAfter int
	Source      string
}

// ReviewEventData captures a review answer and its resulting schedule.
type ReviewEventData struct {
	Topic        string
	Correct      bool
	IntervalDays int
	NextReview   time.Time
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a backend API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns backend request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one backend request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsageStat, error)

	// TodayLLMUsage returns the call and token counts recorded on the
	// calendar day containing now (local time). Feeds the daily ceilings.
	TodayLLMUsage(ctx context.Context, now time.Time) (calls, tokens int, err error)

	// AppendXPEvent records an XP award.
	AppendXPEvent(ctx context.Context, data XPEventData) error

	// AppendAchievementEvent records an achievement unlock.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// AppendSimulationEvent records a simulation lifecycle event.
	AppendSimulationEvent(ctx context.Context, data SimulationEventData) error

	// QuerySimulationSummaries returns completed simulation sessions, newest first.
	QuerySimulationSummaries(ctx context.Context, opts QueryOpts) ([]SimulationSummaryRecord, error)

	// AppendDecisionEvent records a scored decision.
	AppendDecisionEvent(ctx context.Context, data DecisionEventData) error

	// AppendMasteryEvent records a topic point change.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AppendReviewEvent records a review answer.
	AppendReviewEvent(ctx context.Context, data ReviewEventData) error
}
