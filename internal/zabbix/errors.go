package zabbix

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Ошибки клиента.
var (
	// ErrServer — сервер вернул поле error.
	ErrServer = errors.New("zabbix api error")

	// ErrMalformedResponse — в ответе нет ни result, ни error, либо он не разбирается.
	ErrMalformedResponse = errors.New("malformed api response")

	// ErrTransport — HTTP-запрос не выполнен или вернул не-2xx статус.
	ErrTransport = errors.New("api request failed")

	// ErrNoToken — user.login не вернул токен.
	ErrNoToken = errors.New("no session token")

	// ErrEmptyHost — имя хоста не задано.
	ErrEmptyHost = errors.New("host name is empty")
)

// RPCError — ошибка, которую вернул сервер в поле error.
type RPCError struct {
	Method  string `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

// UnmarshalJSON разбирает поле error ответа. Если data не строка,
// в Data сохраняется его JSON-текст.
func (e *RPCError) UnmarshalJSON(b []byte) error {
	var raw struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.Code = raw.Code
	e.Message = raw.Message
	e.Data = ""

	data := bytes.TrimSpace(raw.Data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &e.Data); err != nil {
		e.Data = string(data)
	}
	return nil
}

// Error возвращает текст ошибки вместе с деталями сервера.
func (e *RPCError) Error() string {
	msg := e.Detail()
	if e.Method != "" {
		return fmt.Sprintf("%s: %s", e.Method, msg)
	}
	return msg
}

// Detail возвращает описание ошибки от сервера: data, а если его нет — message.
func (e *RPCError) Detail() string {
	if e.Data != "" {
		return e.Data
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error code %d", e.Code)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrServer).
func (e *RPCError) Is(target error) bool {
	return target == ErrServer
}

// Unauthorized сообщает, что сессия недействительна и нужен повторный login.
func (e *RPCError) Unauthorized() bool {
	d := strings.ToLower(e.Data + " " + e.Message)
	return strings.Contains(d, "not authori") ||
		strings.Contains(d, "session terminated") ||
		strings.Contains(d, "re-login")
}

// ServerDetail извлекает описание ошибки сервера из цепочки err.
// Для прочих ошибок возвращает err.Error().
func ServerDetail(err error) string {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr.Detail()
	}
	return err.Error()
}
