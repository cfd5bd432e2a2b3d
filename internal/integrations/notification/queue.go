package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultQueue очередь писем, которую читает mail worker
const DefaultQueue = "email_queue"

// Channel часть *amqp.Channel, нужная публикатору
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// QueuePublisher кладет письма в durable очередь RabbitMQ, отправкой занимается отдельный worker
type QueuePublisher struct {
	ch    Channel
	queue string
	log   Logger
}

// NewQueuePublisher объявляет очередь и возвращает публикатор
func NewQueuePublisher(ch Channel, queue string, log Logger) (*QueuePublisher, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to declare queue %s: %v", ErrUnavailable, queue, err)
	}

	return &QueuePublisher{ch: ch, queue: queue, log: log}, nil
}

// Send публикует письмо в очередь
func (p *QueuePublisher) Send(ctx context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", ErrInternal, err)
	}

	err = p.ch.PublishWithContext(ctx, "", p.queue, true, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to publish to %s: %v", ErrUnavailable, p.queue, err)
	}

	p.log.Info("Notification queued to=%s, queue=%s", msg.To, p.queue)
	return nil
}
