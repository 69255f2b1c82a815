package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EO-DataHub/zoom-webinar-services/models"
	"github.com/apache/pulsar-client-go/pulsar"
)

// Notifier announces webinar lifecycle changes to other services.
type Notifier interface {
	Notify(ctx context.Context, event models.WebinarEvent) error
	Close()
}

type EventPublisher struct {
	client   pulsar.Client
	producer pulsar.Producer
}

// NewEventPublisher initializes the Pulsar client and producer.
func NewEventPublisher(pulsarURL, topic string) (*EventPublisher, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: pulsarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Pulsar client: %w", err)
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not create Pulsar producer: %w", err)
	}

	return &EventPublisher{client: client, producer: producer}, nil
}

// Notify publishes an event keyed by the local webinar id so events of the
// same webinar stay ordered.
func (p *EventPublisher) Notify(ctx context.Context, event models.WebinarEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not serialize event payload: %w", err)
	}

	_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
		Key:     event.WebinarID.String(),
		Payload: message,
	})
	if err != nil {
		return fmt.Errorf("could not send event to Pulsar: %w", err)
	}

	return nil
}

// Close closes the Pulsar client and producer.
func (p *EventPublisher) Close() {
	p.producer.Close()
	p.client.Close()
}

// NopNotifier drops every event. It is used when no Pulsar URL is configured.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, models.WebinarEvent) error { return nil }

func (NopNotifier) Close() {}
