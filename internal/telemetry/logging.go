package telemetry

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// LogLevel определяет уровень логирования из переменной окружения.
// Возможные значения: DEBUG, INFO, WARN, ERROR
// По умолчанию: WARN, чтобы не засорять вывод команд.
func LogLevel() slog.Level {
	switch strings.ToUpper(os.Getenv("LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetupLogger инициализирует глобальный логгер, пишущий в stderr.
//
// Формат вывода определяется переменной LOG_FORMAT:
//   - "text" (по умолчанию) — человекочитаемый формат
//   - "json" — JSON формат для сбора логов
//
// Каждому запуску присваивается invocation_id.
func SetupLogger() *slog.Logger {
	logger := NewLogger(os.Stderr, LogLevel(), os.Getenv("LOG_FORMAT"))
	slog.SetDefault(logger)
	return logger
}

// NewLogger создаёт логгер с заданными writer, уровнем и форматом.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return WithInvocationID(slog.New(handler), uuid.NewString())
}

// Ключи контекста для передачи данных в логгер.
type ctxKey string

const (
	// CtxLogger — ключ для логгера в контексте.
	CtxLogger ctxKey = "logger"
)

// WithLogger добавляет логгер в контекст.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, CtxLogger, logger)
}

// FromContext извлекает логгер из контекста.
// Если логгер не найден, возвращает глобальный.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(CtxLogger).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithInvocationID возвращает логгер с добавленным invocation_id.
func WithInvocationID(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("invocation_id", id)
}

// WithMethod возвращает логгер с добавленным методом API.
func WithMethod(logger *slog.Logger, method string) *slog.Logger {
	return logger.With("method", method)
}

// WithHost возвращает логгер с добавленным именем хоста.
func WithHost(logger *slog.Logger, host string) *slog.Logger {
	return logger.With("host", host)
}
