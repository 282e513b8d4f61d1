package mq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrClosed — соединение закрыто через Close.
var ErrClosed = errors.New("connection closed")

// Connection — AMQP соединение с ленивым переподключением.
//
// Публикации редкие (раз в сутки при refresh), поэтому вместо фонового
// наблюдателя соединение восстанавливается при следующем WithChannel.
type Connection struct {
	url    string
	logger *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

// URLFromEnv возвращает RABBITMQ_URL. Пустая строка — брокер не настроен.
func URLFromEnv() string {
	return os.Getenv("RABBITMQ_URL")
}

// NewConnection создаёт соединение с RabbitMQ.
func NewConnection(url string, logger *slog.Logger) (*Connection, error) {
	c := &Connection{
		url:    url,
		logger: logger,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connectLocked(); err != nil {
		return nil, err
	}

	return c, nil
}

// connectLocked устанавливает соединение и открывает канал. Вызывается под mu.
func (c *Connection) connectLocked() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch

	c.logger.Info("connected to RabbitMQ")
	return nil
}

// WithChannel выполняет fn с открытым каналом, переподключаясь при необходимости.
func (c *Connection) WithChannel(ctx context.Context, fn func(ch *amqp.Channel) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.conn == nil || c.conn.IsClosed() || c.channel == nil || c.channel.IsClosed() {
		c.logger.Warn("amqp connection lost, reconnecting")
		c.release()
		if err := c.connectLocked(); err != nil {
			return err
		}
	}

	return fn(c.channel)
}

// release закрывает остатки старого соединения. Вызывается под mu.
func (c *Connection) release() {
	if c.channel != nil {
		c.channel.Close()
		c.channel = nil
	}
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// Close закрывает соединение.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	c.channel, c.conn = nil, nil

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	c.logger.Info("connection closed")
	return nil
}
