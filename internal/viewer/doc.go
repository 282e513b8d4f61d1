// Package viewer — интерактивный просмотр диаграммы a–e по HTTP.
//
// Страница / содержит два слайдера (x1, x2 от 0 до 10 с шагом 0.05).
// При каждом изменении браузер запрашивает /plot.png заново, и график
// перерисовывается целиком — без кеша.
//
// Структура:
//   - handler.go    — Handler с зависимостями (таблица, оверлей, logger)
//   - routes.go     — регистрация маршрутов
//   - middleware.go — logging, recovery, метрики
//   - response.go   — JSON-ответы и ошибки
//   - source.go     — TableSource: текущая таблица, которую может подменить refresh
//   - page.html     — страница со слайдерами
package viewer
