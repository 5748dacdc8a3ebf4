// Package notifier relays queued notification jobs to the message broker.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"dinner-club/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrBrokerUnavailable = errs.New("message broker unavailable")
	ErrPublishFailed     = errs.New("failed to publish message")
)

type Message struct {
	ID    string
	Topic string
	Body  []byte
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// AMQPPublisher keeps one connection and channel open and re-dials after the
// broker drops them.
type AMQPPublisher struct {
	url   string
	queue string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue}
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch, err := p.channel()
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Type:         msg.Topic,
		Timestamp:    time.Now().UTC(),
		Body:         msg.Body,
	}

	// default exchange, routing key is the queue name
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		p.reset()
		return errs.Mark(err, ErrPublishFailed)
	}
	return nil
}

func (p *AMQPPublisher) channel() (*amqp.Channel, error) {
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.reset()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, errs.Mark(err, ErrBrokerUnavailable)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Mark(err, ErrBrokerUnavailable)
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Mark(err, ErrBrokerUnavailable)
	}

	p.conn, p.ch = conn, ch
	return ch, nil
}

func (p *AMQPPublisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Close()
	}
	p.conn, p.ch = nil, nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// LogPublisher stands in for the broker when AMQP_URL is unset, so local
// runs still drain the outbox.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg Message) error {
	p.logger.Info("notification relayed to log", "id", msg.ID, "topic", msg.Topic, "bytes", len(msg.Body))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
