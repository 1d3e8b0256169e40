// Package eventbus carries module events over NATS with watermill.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ksicht/standings/app/shared/handlerwrapper"
	nc "github.com/nats-io/nats.go"
)

// EventBus publishes and subscribes watermill messages. It is used both as
// the router's subscriber and as its publisher.
type EventBus interface {
	message.Publisher
	message.Subscriber
}

// eventBus implements the EventBus interface.
type eventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber
	logger     *slog.Logger
}

// NewEventBus connects a publisher and a subscriber to NATS core subjects.
func NewEventBus(natsURL string, logger *slog.Logger) (EventBus, error) {
	watermillLogger := watermill.NewSlogLogger(logger)
	marshaler := &nats.NATSMarshaler{}
	options := []nc.Option{
		nc.RetryOnFailedConnect(true),
		nc.Timeout(30 * time.Second),
		nc.ReconnectWait(1 * time.Second),
	}
	jsConfig := nats.JetStreamConfig{Disabled: true}

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:               natsURL,
			NatsOptions:       options,
			Marshaler:         marshaler,
			JetStream:         jsConfig,
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		watermillLogger,
	)
	if err != nil {
		logger.Error("Failed to create Watermill publisher", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	subscriber, err := nats.NewSubscriber(
		nats.SubscriberConfig{
			URL:               natsURL,
			CloseTimeout:      30 * time.Second,
			AckWaitTimeout:    30 * time.Second,
			NatsOptions:       options,
			Unmarshaler:       marshaler,
			JetStream:         jsConfig,
			SubjectCalculator: nats.DefaultSubjectCalculator,
		},
		watermillLogger,
	)
	if err != nil {
		publisher.Close()
		logger.Error("Failed to create Watermill subscriber", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create NATS subscriber: %w", err)
	}

	return New(publisher, subscriber, logger), nil
}

// New wraps an existing publisher and subscriber, e.g. an in-memory channel.
func New(publisher message.Publisher, subscriber message.Subscriber, logger *slog.Logger) EventBus {
	return &eventBus{publisher: publisher, subscriber: subscriber, logger: logger}
}

// Publish sends messages to topic. With an empty topic every message goes to
// the topic named in its metadata.
func (eb *eventBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}

		subject := topic
		if subject == "" {
			subject = msg.Metadata.Get(handlerwrapper.MetadataTopic)
		}
		if subject == "" {
			return fmt.Errorf("message %s has no topic", msg.UUID)
		}

		eb.logger.Debug("Publishing message",
			slog.String("topic", subject),
			slog.String("message_id", msg.UUID),
		)

		if err := eb.publisher.Publish(subject, msg); err != nil {
			eb.logger.Error("Failed to publish message",
				slog.String("topic", subject),
				slog.Any("error", err),
			)
			return fmt.Errorf("failed to publish message to %s: %w", subject, err)
		}
	}
	return nil
}

// Subscribe delivers messages published to topic.
func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return eb.subscriber.Subscribe(ctx, topic)
}

// Close closes the publisher and the subscriber.
func (eb *eventBus) Close() error {
	pubErr := eb.publisher.Close()
	subErr := eb.subscriber.Close()
	if pubErr != nil {
		return fmt.Errorf("failed to close publisher: %w", pubErr)
	}
	if subErr != nil {
		return fmt.Errorf("failed to close subscriber: %w", subErr)
	}
	return nil
}
