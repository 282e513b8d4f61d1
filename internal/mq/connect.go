package mq

import (
	"context"
	"log/slog"
)

// Connect подключается к брокеру по RABBITMQ_URL и объявляет топологию.
//
// Возвращает nil, nil если брокер не настроен или недоступен: события
// необязательны, и команда продолжает работу без них.
func Connect(ctx context.Context, logger *slog.Logger) (*Connection, *Publisher) {
	url := URLFromEnv()
	if url == "" {
		logger.Debug("RABBITMQ_URL not set, catalog events disabled")
		return nil, nil
	}

	conn, err := NewConnection(url, logger)
	if err != nil {
		logger.Warn("RabbitMQ not available, catalog events disabled", "error", err)
		return nil, nil
	}

	if err := SetupTopology(ctx, conn); err != nil {
		logger.Warn("failed to setup topology", "error", err)
	}

	return conn, NewPublisher(conn, logger)
}
