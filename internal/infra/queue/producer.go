package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Client lifecycle event tags.
const (
	EventClientCreated      = "client_created"
	EventClientAutoAssigned = "client_auto_assigned"
)

type ClientEventPayload struct {
	Event    string `json:"event"`
	ClientID string `json:"client_id"`
	WorkerID string `json:"worker_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`

	// Signup intake extras, passed through for downstream consumers even
	// though the client record does not store them.
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishClientEvent(ctx context.Context, payload ClientEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize client event: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %v", err)
	}

	return nil
}
