// Package messaging adapts the Watermill event bus to the domain's Publisher
// interface.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/schoolsvc/pkg/events"
	domainevents "github.com/ghuser/schoolsvc/services/school/domain/events"
)

// BusPublisher publishes school events through the shared EventBus. Payloads
// are JSON; the event id and schema version travel in message metadata so
// consumers can filter without unmarshaling.
type BusPublisher struct {
	bus *events.EventBus
}

// NewBusPublisher returns a BusPublisher backed by the given bus.
func NewBusPublisher(bus *events.EventBus) *BusPublisher {
	return &BusPublisher{bus: bus}
}

// Publish implements domainevents.Publisher.
func (p *BusPublisher) Publish(ctx context.Context, topic string, event domainevents.SchoolEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", topic, err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", strconv.Itoa(event.Version))
	return p.bus.Publish(ctx, topic, msg)
}
