package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/schoolsvc/services/school/domain/models"
)

// Watermill topics for school lifecycle events.
const (
	TopicSchoolCreated = "school.created"
	TopicSchoolUpdated = "school.updated"
	TopicSchoolDeleted = "school.deleted"
)

// SchoolEvent is the envelope published on every school mutation. One shape
// serves all three topics; the topic carries the event kind.
type SchoolEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	SchoolID   int64     `json:"school_id"`
	Name       string    `json:"name"`
	Active     bool      `json:"active"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FromSchool builds the event envelope for a persisted school.
func FromSchool(school *models.School) SchoolEvent {
	return SchoolEvent{
		EventID:    uuid.New(),
		Version:    1,
		SchoolID:   school.ID,
		Name:       school.Name.String(),
		Active:     school.Active,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher is the event sink injected into the resource service. Events are
// published after the store write succeeds; a returned error is for logging
// only and must never fail or roll back the mutation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, topic string, event SchoolEvent) error
}
