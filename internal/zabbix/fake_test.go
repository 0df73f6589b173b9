package zabbix

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const testToken = "0424bd59b807674191e7d77572075f33"

// recordedCall — запрос, полученный fake-сервером.
type recordedCall struct {
	Method string
	Params json.RawMessage
	Auth   *string
}

// methodHandler возвращает result или error для метода.
type methodHandler func(params json.RawMessage, auth *string) (any, *RPCError)

// fakeZabbix — минимальный JSON-RPC сервер Zabbix для тестов.
type fakeZabbix struct {
	t        *testing.T
	server   *httptest.Server
	mu       sync.Mutex
	calls    []recordedCall
	handlers map[string]methodHandler
}

func newFakeZabbix(t *testing.T) *fakeZabbix {
	t.Helper()

	f := &fakeZabbix{
		t:        t,
		handlers: make(map[string]methodHandler),
	}
	f.handle(MethodUserLogin, func(params json.RawMessage, _ *string) (any, *RPCError) {
		var p loginParams
		json.Unmarshal(params, &p)
		if p.User == "admin" && p.Password == "zabbix" {
			return testToken, nil
		}
		return nil, &RPCError{Code: -32602, Message: "Invalid params.", Data: "Login name or password is incorrect."}
	})

	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeZabbix) handle(method string, h methodHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method] = h
}

// requireAuth оборачивает handler проверкой токена.
func requireAuth(h methodHandler) methodHandler {
	return func(params json.RawMessage, auth *string) (any, *RPCError) {
		if auth == nil || *auth != testToken {
			return nil, &RPCError{Code: -32602, Message: "Invalid params.", Data: "Not authorised."}
		}
		return h(params, auth)
	}
}

func (f *fakeZabbix) serve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		f.t.Errorf("expected POST, got %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		f.t.Errorf("expected application/json, got %q", ct)
	}

	var req struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      int             `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params"`
		Auth    *string         `json:"auth"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		f.t.Errorf("decode request: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if req.JSONRPC != "2.0" || req.ID != 1 {
		f.t.Errorf("bad envelope: jsonrpc=%q id=%d", req.JSONRPC, req.ID)
	}

	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{Method: req.Method, Params: req.Params, Auth: req.Auth})
	h, ok := f.handlers[req.Method]
	f.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	if !ok {
		resp["error"] = &RPCError{Code: -32601, Message: "Method not found.", Data: "Incorrect method \"" + req.Method + "\"."}
	} else if result, rpcErr := h(req.Params, req.Auth); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (f *fakeZabbix) URL() string {
	return f.server.URL
}

// Calls возвращает полученные запросы.
func (f *fakeZabbix) Calls() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall(nil), f.calls...)
}

// CallsOf возвращает запросы к методу.
func (f *fakeZabbix) CallsOf(method string) []recordedCall {
	var out []recordedCall
	for _, c := range f.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeZabbix) client(user, password string) *Client {
	return NewClient(Config{URL: f.URL(), User: user, Password: password})
}

// filterValues достаёт значения фильтра field из параметров *.get.
func filterValues(t *testing.T, params json.RawMessage, field string) []string {
	t.Helper()
	var p getParams
	if err := json.Unmarshal(params, &p); err != nil {
		t.Fatalf("decode get params: %v", err)
	}
	return p.Filter[field]
}
