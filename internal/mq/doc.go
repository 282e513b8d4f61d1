// Package mq публикует события каталога в RabbitMQ.
//
// События:
//   - catalog.refreshed — каталог заново скачан и разобран (serve --refresh)
//   - catalog.imported  — таблица сохранена в PostgreSQL (import)
//
// RabbitMQ необязателен: если брокер недоступен, команды работают без событий.
package mq
