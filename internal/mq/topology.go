package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// Queue — тип для имени очереди.
type Queue string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeCatalog — обменник событий каталога.
const ExchangeCatalog Exchange = "asteroidgraph.catalog"

// QueueCatalogEvents — очередь, в которую попадают все события каталога.
const QueueCatalogEvents Queue = "catalog.events"

// Routing keys.
const (
	RoutingKeyRefreshed RoutingKey = "refreshed"
	RoutingKeyImported  RoutingKey = "imported"
)

// SetupTopology объявляет обменник и очередь и связывает их.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeCatalog), // name
			"direct",                // type
			true,                    // durable
			false,                   // auto-deleted
			false,                   // internal
			false,                   // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeCatalog, err)
		}

		_, err = ch.QueueDeclare(
			string(QueueCatalogEvents), // name
			true,                       // durable
			false,                      // auto-delete
			false,                      // exclusive
			false,                      // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("declare queue %s: %w", QueueCatalogEvents, err)
		}

		for _, key := range []RoutingKey{RoutingKeyRefreshed, RoutingKeyImported} {
			if err := ch.QueueBind(string(QueueCatalogEvents), string(key), string(ExchangeCatalog), false, nil); err != nil {
				return fmt.Errorf("bind %s to %s/%s: %w", QueueCatalogEvents, ExchangeCatalog, key, err)
			}
		}

		return nil
	})
}
