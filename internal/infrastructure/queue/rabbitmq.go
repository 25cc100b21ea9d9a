package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"lendhub-backend/internal/domain/lead"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.leads"
	ExchangeKind = "topic"
)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQPublisher struct {
	conn *amqp.Connection
	ch   channel
}

// NewRabbitMQPublisher dials url and declares the durable lead events exchange.
func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", ExchangeName, err)
	}
	return &RabbitMQPublisher{conn: conn, ch: ch}, nil
}

func newPublisherWithChannel(ch channel) *RabbitMQPublisher {
	return &RabbitMQPublisher{ch: ch}
}

// Publish routes the event by its type, e.g. "lead.status_changed".
func (p *RabbitMQPublisher) Publish(ctx context.Context, e lead.Event) error {
	msg, err := toPublishing(e)
	if err != nil {
		return err
	}
	if err := p.ch.PublishWithContext(ctx, ExchangeName, string(e.Type), false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

func toPublishing(e lead.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", e.Type, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         string(e.Type),
		MessageId:    e.LeadID + ":" + string(e.Type) + ":" + e.OccurredAt.UTC().Format("20060102T150405.000000000"),
		Timestamp:    e.OccurredAt,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}, nil
}
