package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	jsonRPCVersion = "2.0"
	requestID      = 1

	// Ограничение размера ответа, чтобы не читать в память бесконечное тело.
	maxResponseBody = 32 * 1024 * 1024
)

// Методы API.
const (
	MethodUserLogin    = "user.login"
	MethodHostCreate   = "host.create"
	MethodHostGet      = "host.get"
	MethodHostGroupGet = "hostgroup.get"
	MethodTemplateGet  = "template.get"
	MethodProxyGet     = "proxy.get"
)

// Envelope — тело JSON-RPC запроса.
//
// Auth сериализуется как null, если токена нет.
type Envelope struct {
	JSONRPC string  `json:"jsonrpc"`
	ID      int     `json:"id"`
	Method  string  `json:"method"`
	Params  any     `json:"params"`
	Auth    *string `json:"auth"`
}

// newRequest собирает конверт запроса.
func newRequest(method string, params any, token string) *Envelope {
	req := &Envelope{
		JSONRPC: jsonRPCVersion,
		ID:      requestID,
		Method:  method,
		Params:  params,
	}
	if token != "" {
		req.Auth = &token
	}
	return req
}

// --- Параметры методов ---

// loginParams — параметры user.login.
type loginParams struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// getParams — общие параметры методов *.get.
type getParams struct {
	Output []string            `json:"output"`
	Filter map[string][]string `json:"filter,omitempty"`
}

// newGetParams создаёт параметры *.get. Фильтр добавляется только если
// заданы имена.
func newGetParams(output []string, filterField string, names []string) *getParams {
	p := &getParams{Output: output}
	if len(names) > 0 {
		p.Filter = map[string][]string{filterField: names}
	}
	return p
}

// hostInterface — сетевой интерфейс хоста.
type hostInterface struct {
	Type  int    `json:"type"`
	Main  int    `json:"main"`
	UseIP int    `json:"useip"`
	IP    string `json:"ip"`
	DNS   string `json:"dns"`
	Port  string `json:"port"`
}

type groupRef struct {
	GroupID string `json:"groupid"`
}

type templateRef struct {
	TemplateID string `json:"templateid"`
}

// hostCreateParams — параметры host.create.
type hostCreateParams struct {
	Host        string          `json:"host"`
	Interfaces  []hostInterface `json:"interfaces"`
	Groups      []groupRef      `json:"groups,omitempty"`
	Templates   []templateRef   `json:"templates,omitempty"`
	ProxyHostID string          `json:"proxy_hostid,omitempty"`
}

// --- Транспорт ---

// post отправляет конверт и разбирает ответ в result.
//
// Ответ с полем result — успех, с полем error — *RPCError,
// без обоих полей — ErrMalformedResponse.
func (c *Client) post(ctx context.Context, req *Envelope, result any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", req.Method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, req.Method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", ErrTransport, req.Method, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s: HTTP %d", ErrTransport, req.Method, resp.StatusCode)
	}

	return decodeResponse(req.Method, data, result)
}

// decodeResponse интерпретирует тело ответа.
func decodeResponse(method string, data []byte, result any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, method, err)
	}

	if raw, ok := fields["error"]; ok && !isNull(raw) {
		rpcErr := &RPCError{}
		if err := json.Unmarshal(raw, rpcErr); err != nil {
			return fmt.Errorf("%w: %s: decode error: %v", ErrMalformedResponse, method, err)
		}
		rpcErr.Method = method
		return rpcErr
	}

	raw, ok := fields["result"]
	if !ok {
		return fmt.Errorf("%w: %s: neither result nor error in response", ErrMalformedResponse, method)
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("%w: %s: decode result: %v", ErrMalformedResponse, method, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
