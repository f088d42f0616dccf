package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
)

// PlaceMessage es el mensaje que consume el indexador de búsqueda
type PlaceMessage struct {
	Action    string `json:"action"`
	PlaceID   string `json:"place_id"`
	BookingID string `json:"booking_id,omitempty"`
}

// Publisher publica eventos de cambios en places y reservas
type Publisher interface {
	Publish(ctx context.Context, msg PlaceMessage) error
	Close() error
}

// RabbitMQPublisher publica en una cola durable usando el exchange por defecto
type RabbitMQPublisher struct {
	mu         sync.Mutex
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher conecta con RabbitMQ y declara la cola
func NewRabbitMQPublisher(rabbitURL, queueName string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	slog.Info("RabbitMQ publisher ready", "queue", queueName)

	return &RabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// Publish envía el mensaje como JSON persistente
// amqp.Channel no es seguro para uso concurrente, por eso el mutex
func (p *RabbitMQPublisher) Publish(ctx context.Context, msg PlaceMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish(
		"",          // exchange por defecto
		p.queueName, // routing key = nombre de la cola
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close cierra el channel y la conexión
func (p *RabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.connection != nil {
		return p.connection.Close()
	}
	return nil
}

// NoopPublisher descarta los eventos; se usa cuando RABBITMQ_URL no está configurado
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, PlaceMessage) error { return nil }

func (NoopPublisher) Close() error { return nil }
