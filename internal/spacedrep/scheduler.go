package spacedrep

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/kevinkeet/watershed/internal/mastery"
	"github.com/kevinkeet/watershed/internal/store"
)

// Scheduler drives review selection and records review outcomes.
type Scheduler struct {
	mastery   *mastery.Service
	eventRepo store.EventRepo
}

// NewScheduler creates a scheduler over the given mastery service.
func NewScheduler(masterySvc *mastery.Service, eventRepo store.EventRepo) *Scheduler {
	return &Scheduler{
		mastery:   masterySvc,
		eventRepo: eventRepo,
	}
}

// DueTopics returns the topics due for review, most urgent first. Ties
// break by oldest last review (never-reviewed topics first), then by
// topic name for a stable order.
func (s *Scheduler) DueTopics(now time.Time) []*mastery.TopicRecord {
	var due []*mastery.TopicRecord
	for _, rec := range s.mastery.All() {
		if IsDue(rec, now) {
			due = append(due, rec)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		ui, uj := Urgency(due[i], now), Urgency(due[j], now)
		if ui != uj {
			return ui > uj
		}
		li, lj := due[i].LastReview, due[j].LastReview
		switch {
		case li == nil && lj != nil:
			return true
		case li != nil && lj == nil:
			return false
		case li != nil && lj != nil && !li.Equal(*lj):
			return li.Before(*lj)
		}
		return due[i].Topic < due[j].Topic
	})

	return due
}

// RecordReview updates the schedule after a review answer. A correct
// answer also earns a mastery point for the topic.
func (s *Scheduler) RecordReview(ctx context.Context, topic string, correct bool, now time.Time) time.Time {
	rec := s.mastery.Get(topic)

	if correct {
		s.mastery.RecordPoints(ctx, topic, 1, "review")
	}

	interval := ReviewInterval(rec.Level(), correct)
	next := now.AddDate(0, 0, interval)
	s.mastery.SetReview(topic, now, next)

	if s.eventRepo != nil {
		data := store.ReviewEventData{
			Topic:        topic,
			Correct:      correct,
			IntervalDays: interval,
			NextReview:   next,
		}
		if err := s.eventRepo.AppendReviewEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log review event: %v\n", err)
		}
	}

	return next
}
