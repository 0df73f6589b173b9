// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go — structured logging через slog (в stderr, stdout занят данными)
//   - metrics.go — Prometheus метрики вызовов API с отправкой в Pushgateway
//
// CLI живёт секунды, поэтому метрики не отдаются через /metrics,
// а отправляются одним push после выполнения команды.
package telemetry
