// Package scheduler периодически обновляет каталог в режиме serve.
//
// По cron-выражению Scheduler скачивает MPCORB.DAT заново, разбирает его,
// подменяет таблицу viewer и публикует catalog.refreshed. Если обновление
// не удалось, остаётся прежняя таблица.
package scheduler
