package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageType — тип сообщения в очереди.
type MessageType string

// Типы сообщений.
const (
	MessageTypeCatalogRefreshed MessageType = "catalog.refreshed"
	MessageTypeCatalogImported  MessageType = "catalog.imported"
)

// Message — сообщение для публикации.
type Message struct {
	ID        string      `json:"id"`
	Type      MessageType `json:"type"`
	Payload   any         `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// CatalogRefreshedPayload — payload события об обновлении каталога.
type CatalogRefreshedPayload struct {
	URL   string `json:"url"`
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
	Rows  int    `json:"rows"`
}

// CatalogImportedPayload — payload события об импорте в PostgreSQL.
type CatalogImportedPayload struct {
	BatchID uuid.UUID `json:"batch_id"`
	Source  string    `json:"source"`
	Rows    int       `json:"rows"`
}

// Publisher публикует сообщения в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// NewMessage создаёт сообщение с новым ID.
func NewMessage(msgType MessageType, payload any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Publish публикует сообщение в указанный exchange с routing key.
func (p *Publisher) Publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(exchange),
			string(routingKey),
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		p.logger.Debug("published message",
			"exchange", exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishCatalogRefreshed публикует событие об обновлении каталога.
func (p *Publisher) PublishCatalogRefreshed(ctx context.Context, payload CatalogRefreshedPayload) error {
	msg := NewMessage(MessageTypeCatalogRefreshed, payload)
	return p.Publish(ctx, ExchangeCatalog, RoutingKeyRefreshed, msg)
}

// PublishCatalogImported публикует событие об импорте каталога.
func (p *Publisher) PublishCatalogImported(ctx context.Context, payload CatalogImportedPayload) error {
	msg := NewMessage(MessageTypeCatalogImported, payload)
	return p.Publish(ctx, ExchangeCatalog, RoutingKeyImported, msg)
}
