package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moneygame/events"
	"moneygame/models"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	sourceService = "moneygame"

	// defaultPublishTimeout bounds a single broker publish
	defaultPublishTimeout = 5 * time.Second
)

// MessagePublisher sends raw payloads to a subject
type MessagePublisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// EventEnvelope wraps every forwarded event
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	Timestamp     time.Time       `json:"timestamp"`
	SourceService string          `json:"source_service"`
	Payload       json.RawMessage `json:"payload"`
}

// EventForwarder relays simulation events from the in-process bus to a message broker
type EventForwarder struct {
	publisher      MessagePublisher
	now            func() time.Time
	publishTimeout time.Duration
}

// NewEventForwarder creates a forwarder that publishes through publisher
func NewEventForwarder(publisher MessagePublisher) *EventForwarder {
	return &EventForwarder{
		publisher:      publisher,
		now:            time.Now,
		publishTimeout: defaultPublishTimeout,
	}
}

// Register subscribes the forwarder to every simulation event type on the bus
func (f *EventForwarder) Register(bus *events.Bus) {
	bus.Subscribe(events.EventTypeSimulationCompleted, f.handle)
	bus.Subscribe(events.EventTypeSimulationReplayed, f.handle)
}

func (f *EventForwarder) handle(ctx context.Context, event events.Event) {
	// Bus handlers receive a context without a deadline
	ctx, cancel := context.WithTimeout(ctx, f.publishTimeout)
	defer cancel()

	if err := f.Forward(ctx, event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
			"error":     err,
		}).Error("Failed to forward event")
	}
}

// Forward wraps event in an envelope and publishes it to its subject
func (f *EventForwarder) Forward(ctx context.Context, event events.Event) error {
	subject, err := SubjectFor(event)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	envelope := EventEnvelope{
		EventID:       uuid.New().String(),
		EventType:     string(event.Type()),
		Timestamp:     f.now().UTC(),
		SourceService: sourceService,
		Payload:       payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event envelope: %w", err)
	}

	if err := f.publisher.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", subject, err)
	}

	log.WithFields(log.Fields{
		"eventType": envelope.EventType,
		"eventId":   envelope.EventID,
		"subject":   subject,
	}).Debug("Forwarded event")

	return nil
}

// SubjectFor maps an event to its broker subject
func SubjectFor(event events.Event) (string, error) {
	switch e := event.(type) {
	case events.SimulationCompletedEvent:
		return strategySubject("simulations.completed", e.Strategy), nil
	case events.SimulationReplayedEvent:
		return strategySubject("simulations.replayed", e.Strategy), nil
	default:
		return "", fmt.Errorf("no subject for event type %s", event.Type())
	}
}

func strategySubject(prefix string, strategy models.Strategy) string {
	return prefix + "." + string(strategy)
}
