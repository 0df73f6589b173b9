package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// --- Logging ---

func TestLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
		"":      slog.LevelWarn,
	}
	for env, want := range tests {
		t.Setenv("LOG_LEVEL", env)
		if got := LogLevel(); got != want {
			t.Errorf("LOG_LEVEL=%q: expected %v, got %v", env, want, got)
		}
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo, "json")

	WithMethod(logger, "host.get").Info("api call")
	logger.Debug("hidden")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["method"] != "host.get" {
		t.Errorf("expected method attr, got %v", entry["method"])
	}
	if id, _ := entry["invocation_id"].(string); len(id) != 36 {
		t.Errorf("expected uuid invocation_id, got %v", entry["invocation_id"])
	}
}

func TestFromContext(t *testing.T) {
	logger := NewLogger(io.Discard, slog.LevelInfo, "text")

	if FromContext(WithLogger(context.Background(), logger)) != logger {
		t.Error("expected logger from context")
	}
	if FromContext(context.Background()) != slog.Default() {
		t.Error("expected default logger")
	}
}

// --- Metrics ---

func TestMetrics_ObserveRPC(t *testing.T) {
	m := NewMetrics()

	m.ObserveRPC("user.login", OutcomeOK, 10*time.Millisecond)
	m.ObserveRPC("host.create", OutcomeOK, 20*time.Millisecond)
	m.ObserveRPC("host.create", OutcomeServerError, 5*time.Millisecond)
	m.HostCreated(true)
	m.HostCreated(false)
	m.HostCreated(false)

	if v := testutil.ToFloat64(m.rpcTotal.WithLabelValues("host.create", OutcomeServerError)); v != 1 {
		t.Errorf("expected 1 failed host.create, got %v", v)
	}
	if v := testutil.ToFloat64(m.hostsCreated.WithLabelValues(OutcomeServerError)); v != 2 {
		t.Errorf("expected 2 failed hosts, got %v", v)
	}

	expected := `
# HELP zbx_hosts_created_total Hosts processed by host create, by outcome
# TYPE zbx_hosts_created_total counter
zbx_hosts_created_total{outcome="ok"} 1
zbx_hosts_created_total{outcome="server_error"} 2
`
	if err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "zbx_hosts_created_total"); err != nil {
		t.Error(err)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	m.ObserveRPC("host.get", OutcomeOK, time.Millisecond)
	m.HostCreated(true)
	if err := m.Push(context.Background(), "http://unused", "zbx"); err != nil {
		t.Errorf("nil metrics push must be a no-op, got %v", err)
	}
}

func TestMetrics_Push(t *testing.T) {
	var path, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m := NewMetrics()
	m.ObserveRPC("host.get", OutcomeOK, time.Millisecond)

	if err := m.Push(context.Background(), server.URL, "zbx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/metrics/job/zbx" {
		t.Errorf("unexpected push path: %q", path)
	}
	if body == "" {
		t.Error("expected metrics in push body")
	}
}

func TestMetrics_PushError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	if err := NewMetrics().Push(context.Background(), server.URL, "zbx"); err == nil {
		t.Fatal("expected push error")
	}
}
