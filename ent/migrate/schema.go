// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
		},
	}
	// DecisionEventsColumns holds the columns for the "decision_events" table.
	DecisionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "step", Type: field.TypeInt},
		{Name: "action", Type: field.TypeString},
		{Name: "quality", Type: field.TypeString},
		{Name: "delta", Type: field.TypeInt},
	}
	// DecisionEventsTable holds the schema information for the "decision_events" table.
	DecisionEventsTable = &schema.Table{
		Name:       "decision_events",
		Columns:    DecisionEventsColumns,
		PrimaryKey: []*schema.Column{DecisionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decisionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[1]},
			},
			{
				Name:    "decisionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[2]},
			},
			{
				Name:    "decisionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[3]},
			},
			{
				Name:    "decisionevent_quality",
				Unique:  false,
				Columns: []*schema.Column{DecisionEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Default: ""},
		{Name: "response_body", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "delta", Type: field.TypeInt},
		{Name: "points_after", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_topic",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "topic", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "next_review", Type: field.TypeTime},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_topic",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}
	// SimulationEventsColumns holds the columns for the "simulation_events" table.
	SimulationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString, Default: ""},
		{Name: "scenario_type", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "max_score", Type: field.TypeInt, Default: 0},
		{Name: "steps", Type: field.TypeInt, Default: 0},
	}
	// SimulationEventsTable holds the schema information for the "simulation_events" table.
	SimulationEventsTable = &schema.Table{
		Name:       "simulation_events",
		Columns:    SimulationEventsColumns,
		PrimaryKey: []*schema.Column{SimulationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "simulationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SimulationEventsColumns[1]},
			},
			{
				Name:    "simulationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SimulationEventsColumns[2]},
			},
			{
				Name:    "simulationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SimulationEventsColumns[3]},
			},
			{
				Name:    "simulationevent_action",
				Unique:  false,
				Columns: []*schema.Column{SimulationEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// XpEventsColumns holds the columns for the "xp_events" table.
	XpEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeInt},
		{Name: "activity", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
		{Name: "total_after", Type: field.TypeInt},
	}
	// XpEventsTable holds the schema information for the "xp_events" table.
	XpEventsTable = &schema.Table{
		Name:       "xp_events",
		Columns:    XpEventsColumns,
		PrimaryKey: []*schema.Column{XpEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "xpevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[1]},
			},
			{
				Name:    "xpevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[2]},
			},
			{
				Name:    "xpevent_activity",
				Unique:  false,
				Columns: []*schema.Column{XpEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		DecisionEventsTable,
		LlmRequestEventsTable,
		MasteryEventsTable,
		ReviewEventsTable,
		SimulationEventsTable,
		SnapshotsTable,
		XpEventsTable,
	}
)

func init() {
}
