package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/steipete/orderview/internal/orders"
)

const orderJSON = `{"order":{
  "id":"A-17",
  "created_at":"2026-10-16T12:30:00Z",
  "customer_name":"Ana",
  "customer_phone":"+34 600 000 000",
  "pickup_at":null,
  "status":"preparing",
  "payment_method":"card",
  "payment_status":"pending",
  "total_cents":1250,
  "items":[{"quantity":2,"name":"Tortilla","unit_price_cents":500},{"quantity":1,"unit_price_cents":250}]
}}`

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != orders.GetPath {
			t.Errorf("path=%s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("id") {
		case "A-17":
			_, _ = w.Write([]byte(orderJSON))
		case "BROKEN":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		default:
			_, _ = w.Write([]byte(`{"order":null}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestShowPrintsOrder(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	srv := newBackend(t)
	setEnv(t, "ORDERVIEW_TIMEZONE", "UTC")

	out, _, err := runCLI(cfgPath, []string{"show", "A-17", "--base-url", srv.URL}, "")
	if err != nil {
		t.Fatalf("show: %v out=%s", err, out)
	}
	for _, want := range []string{
		"Payment pending.",
		"order=A-17",
		"created=16/10, 12:30",
		"customer=Ana",
		"- 2x Tortilla (10,00",
		"- 1x Item (2,50",
		"total=12,50",
		"print=/order/A-17/print",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected ANSI codes in non-terminal output")
	}
}

func TestShowPaidFlagWins(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	srv := newBackend(t)
	setEnv(t, "ORDERVIEW_TIMEZONE", "UTC")

	out, _, err := runCLI(cfgPath, []string{"show", "A-17", "--paid", "--base-url", srv.URL}, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Payment received.") || strings.Contains(out, "Payment pending.") {
		t.Fatalf("unexpected banner:\n%s", out)
	}
}

func TestShowJSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	srv := newBackend(t)
	setEnv(t, "ORDERVIEW_BASE_URL", srv.URL)
	setEnv(t, "ORDERVIEW_TIMEZONE", "UTC")

	out, _, err := runCLI(cfgPath, []string{"show", "A-17", "--json"}, "")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var o orders.Order
	if err := json.Unmarshal([]byte(out), &o); err != nil {
		t.Fatalf("decode: %v out=%s", err, out)
	}
	if o.ID != "A-17" || o.TotalCents != 1250 || len(o.Items) != 2 {
		t.Fatalf("unexpected order: %#v", o)
	}
}

func TestShowFailures(t *testing.T) {
	srv := newBackend(t)
	setEnv(t, "ORDERVIEW_TIMEZONE", "UTC")

	for _, id := range []string{"BROKEN", "NOPE"} {
		cfgPath := filepath.Join(t.TempDir(), "config.json")
		out, _, err := runCLI(cfgPath, []string{"show", id, "--base-url", srv.URL}, "")
		if err == nil {
			t.Fatalf("%s: expected error", id)
		}
		if !strings.Contains(out, "error=could not load order") {
			t.Fatalf("%s: unexpected out: %s", id, out)
		}
		if strings.Contains(out, "boom") {
			t.Fatalf("%s: backend detail leaked: %s", id, out)
		}
	}
}

func TestShowMissingBaseURL(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.json")
	setEnv(t, "ORDERVIEW_BASE_URL", "")

	_, _, err := runCLI(cfgPath, []string{"show", "A-17"}, "")
	if err == nil || !strings.Contains(err.Error(), "base URL") {
		t.Fatalf("expected missing base URL error, got %v", err)
	}
}
