package mastery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kevinkeet/watershed/internal/store"
)

// TopicRecord tracks one clinical topic's mastery state.
type TopicRecord struct {
	Topic      string
	Points     int
	LastReview *time.Time
	NextReview *time.Time
}

// Level returns the record's current mastery level.
func (r *TopicRecord) Level() Level {
	return LevelForPoints(r.Points)
}

// LevelChange records a topic crossing a level threshold, for display
// and event logging.
type LevelChange struct {
	Topic string
	From  Level
	To    Level
}

// Service owns the per-topic mastery records.
type Service struct {
	topics    map[string]*TopicRecord
	eventRepo store.EventRepo
}

// NewService creates a mastery service, loading state from the snapshot.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{
		topics:    make(map[string]*TopicRecord),
		eventRepo: eventRepo,
	}

	if snap == nil || snap.Mastery == nil {
		return s
	}

	for topic, td := range snap.Mastery.Topics {
		rec := &TopicRecord{
			Topic:  topic,
			Points: td.Points,
		}
		if td.LastReview != nil {
			if t, err := time.Parse(time.RFC3339, *td.LastReview); err == nil {
				rec.LastReview = &t
			}
		}
		if td.NextReview != nil {
			if t, err := time.Parse(time.RFC3339, *td.NextReview); err == nil {
				rec.NextReview = &t
			}
		}
		s.topics[topic] = rec
	}

	return s
}

// Get returns the record for a topic, creating a zero-point record if the
// topic hasn't been encountered.
func (s *Service) Get(topic string) *TopicRecord {
	if rec, ok := s.topics[topic]; ok {
		return rec
	}
	rec := &TopicRecord{Topic: topic}
	s.topics[topic] = rec
	return rec
}

// RecordPoints adds points to a topic. Points never decrease: a negative
// delta is clamped to zero, so levels already reached are never lost.
// Returns a LevelChange when the addition crosses a threshold, nil otherwise.
func (s *Service) RecordPoints(ctx context.Context, topic string, delta int, source string) *LevelChange {
	rec := s.Get(topic)
	before := rec.Level()

	if delta < 0 {
		delta = 0
	}
	rec.Points += delta

	if s.eventRepo != nil {
		data := store.MasteryEventData{
			Topic:       topic,
			Delta:       delta,
			PointsAfter: rec.Points,
			Source:      source,
		}
		if err := s.eventRepo.AppendMasteryEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log mastery event: %v\n", err)
		}
	}

	after := rec.Level()
	if after != before {
		return &LevelChange{Topic: topic, From: before, To: after}
	}
	return nil
}

// SetReview updates a topic's review bookkeeping after a scheduled review.
func (s *Service) SetReview(topic string, last, next time.Time) {
	rec := s.Get(topic)
	rec.LastReview = &last
	rec.NextReview = &next
}

// All returns every tracked topic record.
func (s *Service) All() map[string]*TopicRecord {
	result := make(map[string]*TopicRecord, len(s.topics))
	for topic, rec := range s.topics {
		result[topic] = rec
	}
	return result
}

// SnapshotData exports the current mastery state for persistence.
func (s *Service) SnapshotData() *store.MasterySnapshotData {
	data := &store.MasterySnapshotData{
		Topics: make(map[string]*store.TopicMasteryData),
	}

	for topic, rec := range s.topics {
		td := &store.TopicMasteryData{
			Topic:  topic,
			Points: rec.Points,
		}
		if rec.LastReview != nil {
			v := rec.LastReview.Format(time.RFC3339)
			td.LastReview = &v
		}
		if rec.NextReview != nil {
			v := rec.NextReview.Format(time.RFC3339)
			td.NextReview = &v
		}
		data.Topics[topic] = td
	}

	return data
}
