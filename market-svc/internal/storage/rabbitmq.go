package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"venue-market/market-svc/internal/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

const OrderEventsExchange = "order.events"

type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher sends order events to a topic exchange, routed by event type.
type RabbitMQPublisher struct {
	channel  AMQPChannel
	exchange string
}

func NewRabbitMQPublisher(conn *amqp.Connection) (*RabbitMQPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return NewRabbitMQPublisherWithChannel(ch, OrderEventsExchange)
}

func NewRabbitMQPublisherWithChannel(ch AMQPChannel, exchange string) (*RabbitMQPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("[market-svc] rabbitmq exchange declared: %s", exchange)
	return &RabbitMQPublisher{channel: ch, exchange: exchange}, nil
}

func (p *RabbitMQPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		"order."+event.Type,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.Timestamp,
			Body:         body,
		},
	)
}

func (p *RabbitMQPublisher) Close() error {
	return p.channel.Close()
}
