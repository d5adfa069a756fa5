// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

const (
	eventTypeHeader = "event-type"

	// PublishTimeout bounds one publish, including client retries.
	PublishTimeout = 5 * time.Second
)

var ErrNoBrokers = errors.New("no kafka brokers configured")

// ProducerClient is the part of *kgo.Client the publisher needs.
type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type KafkaPublisher struct {
	cl      ProducerClient
	topic   string
	timeout time.Duration
}

// NewKafkaPublisher connects a producer to brokers. Records go to topic.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.RecordDeliveryTimeout(PublishTimeout),
		kgo.ProduceRequestTimeout(PublishTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return NewKafkaPublisherWithClient(cl, topic), nil
}

type Option func(*KafkaPublisher)

// WithPublishTimeout replaces PublishTimeout for one publisher.
func WithPublishTimeout(d time.Duration) Option {
	return func(p *KafkaPublisher) {
		p.timeout = d
	}
}

func NewKafkaPublisherWithClient(cl ProducerClient, topic string, opts ...Option) *KafkaPublisher {
	p := &KafkaPublisher{cl: cl, topic: topic, timeout: PublishTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishOrderReceived writes evt as JSON keyed by the order id, so events
// of one order stay in one partition. It gives up after PublishTimeout even
// when ctx has no deadline.
func (p *KafkaPublisher) PublishOrderReceived(ctx context.Context, evt domain.OrderReceived) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode order event: %w", err)
	}
	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(evt.OrderID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: eventTypeHeader, Value: []byte("order.received")},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.cl.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce order event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() {
	logger.Info("closing order event producer...")
	p.cl.Close()
	logger.Info("order event producer is closed")
}
