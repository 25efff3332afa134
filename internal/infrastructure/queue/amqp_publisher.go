package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher forwards store changes to a durable RabbitMQ queue. It
// implements ports.ChangeRepository so the change service can use it as its
// sink.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// changeMessage is the JSON body of a published change.
type changeMessage struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	EntityID int64  `json:"entity_id,omitempty"`
	At       string `json:"at"`
}

// NewAMQPPublisher dials url and declares queue.
func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	// durable, not auto-deleted, not exclusive, wait for the broker
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare %s: %w", queue, err)
	}

	return &AMQPPublisher{conn: conn, channel: ch, queue: queue}, nil
}

// InsertChange publishes c on the default exchange, routed to the queue.
func (p *AMQPPublisher) InsertChange(ctx context.Context, c domain.Change) error {
	body, err := encodeChange(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    c.ID.String(),
		Type:         string(c.Kind),
		Timestamp:    c.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close shuts the channel and the connection.
func (p *AMQPPublisher) Close() error {
	chErr := p.channel.Close()
	connErr := p.conn.Close()
	if chErr != nil {
		return chErr
	}
	return connErr
}

func encodeChange(c domain.Change) ([]byte, error) {
	body, err := json.Marshal(changeMessage{
		ID:       c.ID.String(),
		Kind:     string(c.Kind),
		EntityID: c.EntityID,
		At:       c.At.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, fmt.Errorf("encode change: %w", err)
	}
	return body, nil
}

var _ ports.ChangeRepository = (*AMQPPublisher)(nil)
