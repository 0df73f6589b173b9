package zabbix

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shaiso/zbx/internal/telemetry"
)

const defaultTimeout = 30 * time.Second

// Config — параметры подключения к API.
type Config struct {
	// URL — адрес api_jsonrpc.php.
	URL      string
	User     string
	Password string

	// Timeout — таймаут одного HTTP-запроса. Если 0, используется 30s.
	Timeout time.Duration

	// ReuseSession — кешировать токен на время жизни процесса.
	// Без него каждый вызов выполняет свой user.login.
	ReuseSession bool

	// HTTPClient — если задан, используется вместо клиента по умолчанию.
	HTTPClient *http.Client

	Logger  *slog.Logger
	Metrics *telemetry.Metrics
}

// Client — клиент JSON-RPC API Zabbix.
//
// Не предназначен для одновременного использования из нескольких горутин.
type Client struct {
	url      string
	user     string
	password string
	reuse    bool
	token    string

	httpClient *http.Client
	logger     *slog.Logger
	metrics    *telemetry.Metrics
}

// NewClient создаёт клиент для API.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		url:        cfg.URL,
		user:       cfg.User,
		password:   cfg.Password,
		reuse:      cfg.ReuseSession,
		httpClient: httpClient,
		logger:     logger,
		metrics:    cfg.Metrics,
	}
}

// Authenticate выполняет user.login и возвращает токен сессии.
//
// Если сервер не вернул result, возвращает пустую строку и ошибку,
// оборачивающую ErrNoToken и, если есть, *RPCError с деталями сервера.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	req := newRequest(MethodUserLogin, &loginParams{User: c.user, Password: c.password}, "")

	var token string
	if err := c.do(ctx, req, &token); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	if token == "" {
		return "", fmt.Errorf("%w: empty result from %s", ErrNoToken, MethodUserLogin)
	}
	return token, nil
}

// call выполняет метод API от имени свежей (или закешированной) сессии.
//
// Если токен получить не удалось, запрос уходит с auth: null и сервер
// сам отклоняет его; отказ сервера возвращается как *RPCError.
func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	token, authErr := c.session(ctx)
	if authErr != nil {
		c.logger.Warn("authentication failed, calling without token",
			"method", method, "error", authErr)
	}

	err := c.do(ctx, newRequest(method, params, token), result)

	var rpcErr *RPCError
	if c.reuse && token != "" && errors.As(err, &rpcErr) && rpcErr.Unauthorized() {
		c.logger.Info("session rejected, logging in again", "method", method)
		c.token = ""
		token, authErr = c.session(ctx)
		if authErr != nil {
			return err
		}
		err = c.do(ctx, newRequest(method, params, token), result)
	}

	return err
}

// session возвращает токен для очередного вызова.
func (c *Client) session(ctx context.Context) (string, error) {
	if c.reuse && c.token != "" {
		return c.token, nil
	}

	token, err := c.Authenticate(ctx)
	if err != nil {
		return "", err
	}
	if c.reuse {
		c.token = token
	}
	return token, nil
}

// do отправляет один запрос и учитывает его в логах и метриках.
func (c *Client) do(ctx context.Context, req *Envelope, result any) error {
	start := time.Now()
	err := c.post(ctx, req, result)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	c.metrics.ObserveRPC(req.Method, outcome, elapsed)
	telemetry.WithMethod(c.logger, req.Method).Debug("api call",
		"outcome", outcome, "duration", elapsed)

	return err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return telemetry.OutcomeOK
	case errors.Is(err, ErrServer):
		return telemetry.OutcomeServerError
	case errors.Is(err, ErrMalformedResponse):
		return telemetry.OutcomeMalformed
	default:
		return telemetry.OutcomeTransport
	}
}
