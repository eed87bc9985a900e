// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/kevinkeet/watershed/ent/achievementevent"
	"github.com/kevinkeet/watershed/ent/decisionevent"
	"github.com/kevinkeet/watershed/ent/llmrequestevent"
	"github.com/kevinkeet/watershed/ent/masteryevent"
	"github.com/kevinkeet/watershed/ent/reviewevent"
	"github.com/kevinkeet/watershed/ent/schema"
	"github.com/kevinkeet/watershed/ent/simulationevent"
	"github.com/kevinkeet/watershed/ent/snapshot"
	"github.com/kevinkeet/watershed/ent/xpevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[1].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescXpReward is the schema descriptor for xp_reward field.
	achievementeventDescXpReward := achievementeventFields[2].Descriptor()
	// achievementevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	achievementevent.DefaultXpReward = achievementeventDescXpReward.Default.(int)
	decisioneventMixin := schema.DecisionEvent{}.Mixin()
	decisioneventMixinFields0 := decisioneventMixin[0].Fields()
	_ = decisioneventMixinFields0
	decisioneventFields := schema.DecisionEvent{}.Fields()
	_ = decisioneventFields
	// decisioneventDescTimestamp is the schema descriptor for timestamp field.
	decisioneventDescTimestamp := decisioneventMixinFields0[1].Descriptor()
	// decisionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionevent.DefaultTimestamp = decisioneventDescTimestamp.Default.(func() time.Time)
	// decisioneventDescSessionID is the schema descriptor for session_id field.
	decisioneventDescSessionID := decisioneventFields[0].Descriptor()
	// decisionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	decisionevent.SessionIDValidator = decisioneventDescSessionID.Validators[0].(func(string) error)
	// decisioneventDescAction is the schema descriptor for action field.
	decisioneventDescAction := decisioneventFields[2].Descriptor()
	// decisionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	decisionevent.ActionValidator = decisioneventDescAction.Validators[0].(func(string) error)
	// decisioneventDescQuality is the schema descriptor for quality field.
	decisioneventDescQuality := decisioneventFields[3].Descriptor()
	// decisionevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	decisionevent.QualityValidator = decisioneventDescQuality.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescTopic is the schema descriptor for topic field.
	masteryeventDescTopic := masteryeventFields[0].Descriptor()
	// masteryevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	masteryevent.TopicValidator = masteryeventDescTopic.Validators[0].(func(string) error)
	// masteryeventDescSource is the schema descriptor for source field.
	masteryeventDescSource := masteryeventFields[3].Descriptor()
	// masteryevent.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	masteryevent.SourceValidator = masteryeventDescSource.Validators[0].(func(string) error)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescTopic is the schema descriptor for topic field.
	revieweventDescTopic := revieweventFields[0].Descriptor()
	// reviewevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	reviewevent.TopicValidator = revieweventDescTopic.Validators[0].(func(string) error)
	simulationeventMixin := schema.SimulationEvent{}.Mixin()
	simulationeventMixinFields0 := simulationeventMixin[0].Fields()
	_ = simulationeventMixinFields0
	simulationeventFields := schema.SimulationEvent{}.Fields()
	_ = simulationeventFields
	// simulationeventDescTimestamp is the schema descriptor for timestamp field.
	simulationeventDescTimestamp := simulationeventMixinFields0[1].Descriptor()
	// simulationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	simulationevent.DefaultTimestamp = simulationeventDescTimestamp.Default.(func() time.Time)
	// simulationeventDescSessionID is the schema descriptor for session_id field.
	simulationeventDescSessionID := simulationeventFields[0].Descriptor()
	// simulationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	simulationevent.SessionIDValidator = simulationeventDescSessionID.Validators[0].(func(string) error)
	// simulationeventDescAction is the schema descriptor for action field.
	simulationeventDescAction := simulationeventFields[1].Descriptor()
	// simulationevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	simulationevent.ActionValidator = simulationeventDescAction.Validators[0].(func(string) error)
	// simulationeventDescScenarioID is the schema descriptor for scenario_id field.
	simulationeventDescScenarioID := simulationeventFields[2].Descriptor()
	// simulationevent.DefaultScenarioID holds the default value on creation for the scenario_id field.
	simulationevent.DefaultScenarioID = simulationeventDescScenarioID.Default.(string)
	// simulationeventDescScenarioType is the schema descriptor for scenario_type field.
	simulationeventDescScenarioType := simulationeventFields[3].Descriptor()
	// simulationevent.DefaultScenarioType holds the default value on creation for the scenario_type field.
	simulationevent.DefaultScenarioType = simulationeventDescScenarioType.Default.(string)
	// simulationeventDescScore is the schema descriptor for score field.
	simulationeventDescScore := simulationeventFields[4].Descriptor()
	// simulationevent.DefaultScore holds the default value on creation for the score field.
	simulationevent.DefaultScore = simulationeventDescScore.Default.(int)
	// simulationeventDescMaxScore is the schema descriptor for max_score field.
	simulationeventDescMaxScore := simulationeventFields[5].Descriptor()
	// simulationevent.DefaultMaxScore holds the default value on creation for the max_score field.
	simulationevent.DefaultMaxScore = simulationeventDescMaxScore.Default.(int)
	// simulationeventDescSteps is the schema descriptor for steps field.
	simulationeventDescSteps := simulationeventFields[6].Descriptor()
	// simulationevent.DefaultSteps holds the default value on creation for the steps field.
	simulationevent.DefaultSteps = simulationeventDescSteps.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	xpeventMixin := schema.XPEvent{}.Mixin()
	xpeventMixinFields0 := xpeventMixin[0].Fields()
	_ = xpeventMixinFields0
	xpeventFields := schema.XPEvent{}.Fields()
	_ = xpeventFields
	// xpeventDescTimestamp is the schema descriptor for timestamp field.
	xpeventDescTimestamp := xpeventMixinFields0[1].Descriptor()
	// xpevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	xpevent.DefaultTimestamp = xpeventDescTimestamp.Default.(func() time.Time)
	// xpeventDescActivity is the schema descriptor for activity field.
	xpeventDescActivity := xpeventFields[1].Descriptor()
	// xpevent.ActivityValidator is a validator for the "activity" field. It is called by the builders before save.
	xpevent.ActivityValidator = xpeventDescActivity.Validators[0].(func(string) error)
	// xpeventDescReason is the schema descriptor for reason field.
	xpeventDescReason := xpeventFields[2].Descriptor()
	// xpevent.DefaultReason holds the default value on creation for the reason field.
	xpevent.DefaultReason = xpeventDescReason.Default.(string)
}
