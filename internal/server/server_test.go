package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T, mutate func(*Config)) *Server {
	t.Helper()
	cfg := Config{
		Logger:     zap.NewNop(),
		Addr:       ":0",
		Mode:       gin.TestMode,
		DateLayout: "02/01/2006",
		CacheSize:  8,
		Now: func() time.Time {
			return time.Date(2024, 3, 14, 10, 0, 0, 0, time.Local)
		},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	srv, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

type testResp struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func do(t *testing.T, h http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, testResp) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp testResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no logger", mutate: func(c *Config) { c.Logger = nil }},
		{name: "no mode", mutate: func(c *Config) { c.Mode = "" }},
		{name: "no addr", mutate: func(c *Config) { c.Addr = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Logger: zap.NewNop(), Addr: ":0", Mode: gin.TestMode}
			tt.mutate(&cfg)
			if _, err := New(cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	w, resp := do(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if resp.ErrorCode != CodeOK || resp.Message != MessageSuccess {
		t.Errorf("unexpected envelope %+v", resp)
	}
	if w.Header().Get(RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestExtract(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"text": "Amanhã vou caminhar as 10. #lazer #vida", "today": "2024-03-14"}`
	w, resp := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var data extractData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Date != "2024-03-15" || data.DateRule != "tomorrow" {
		t.Errorf("date = %q rule = %q", data.Date, data.DateRule)
	}
	if data.Time != "10:00" || data.Action != "caminhar" {
		t.Errorf("time = %q action = %q", data.Time, data.Action)
	}
	want := []string{"Data: 15/03/2024", "Horário: 10:00", "Ação: caminhar", "Tags: lazer, vida"}
	if strings.Join(data.Report, "|") != strings.Join(want, "|") {
		t.Errorf("report = %q, want %q", data.Report, want)
	}
}

func TestExtract_DefaultsToServerDate(t *testing.T) {
	srv := newTestServer(t, nil)

	_, resp := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", `{"text": "hoje"}`, nil)

	var data extractData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.Date != "2024-03-14" {
		t.Errorf("date = %q, want 2024-03-14", data.Date)
	}
}

func TestExtract_InvalidDate(t *testing.T) {
	srv := newTestServer(t, nil)

	_, resp := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", `{"text": "30/02/2023"}`, nil)

	var data extractData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.InvalidDate == nil || data.InvalidDate.Day != 30 || data.InvalidDate.Month != 2 {
		t.Errorf("invalid date = %+v", data.InvalidDate)
	}
	if !data.Empty {
		t.Error("empty = false, want true")
	}
}

func TestExtract_BadRequests(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "malformed json", path: "/api/v1/extract", body: `{"text":`},
		{name: "empty text", path: "/api/v1/extract", body: `{"text": ""}`},
		{name: "bad today", path: "/api/v1/extract", body: `{"text": "hoje", "today": "14/03/2024"}`},
		{name: "empty batch", path: "/api/v1/extract/batch", body: `{"texts": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := do(t, srv.Handler(), http.MethodPost, tt.path, tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if resp.ErrorCode != CodeBadRequest || resp.Message == "" {
				t.Errorf("unexpected envelope %+v", resp)
			}
		})
	}
}

func TestExtractBatch(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"texts": ["hoje", "nada relevante", "próximo mês"], "today": "2024-01-31"}`
	w, resp := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract/batch", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}

	var data []extractData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if len(data) != 3 {
		t.Fatalf("got %d results, want 3", len(data))
	}
	if data[0].Date != "2024-01-31" || !data[1].Empty || data[2].Date != "2024-02-29" {
		t.Errorf("unexpected results %+v", data)
	}
}

func TestExtractBatch_TooLarge(t *testing.T) {
	srv := newTestServer(t, nil)

	texts := make([]string, maxBatch+1)
	for i := range texts {
		texts[i] = "hoje"
	}
	body, _ := json.Marshal(batchRequest{Texts: texts})

	w, _ := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract/batch", string(body), nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestExtract_Cache(t *testing.T) {
	srv := newTestServer(t, nil)

	body := `{"text": "amanhã", "today": "2024-03-14"}`
	do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", body, nil)
	do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", body, nil)

	if srv.cache.Len() != 1 {
		t.Errorf("cache len = %d, want 1", srv.cache.Len())
	}
	if _, found := srv.cache.Get("2024-03-14\x00amanhã"); !found {
		t.Error("expected cached result keyed by date and text")
	}
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, func(c *Config) { c.RateLimitPerMin = 1 })

	body := `{"text": "hoje"}`
	w, _ := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", w.Code)
	}

	w, resp := do(t, srv.Handler(), http.MethodPost, "/api/v1/extract", body, nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", w.Code)
	}
	if resp.ErrorCode != CodeRateLimited {
		t.Errorf("error code = %d, want %d", resp.ErrorCode, CodeRateLimited)
	}

	// Health is outside the limited group.
	w, _ = do(t, srv.Handler(), http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := newTestServer(t, func(c *Config) { c.Logger = zap.New(core) })

	const id = "0b9c6d2e-8f0a-4c3e-9a51-1d2f3e4a5b6c"
	w, _ := do(t, srv.Handler(), http.MethodGet, "/health", "", map[string]string{RequestIDHeader: id})
	if got := w.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want %q", got, id)
	}

	w, _ = do(t, srv.Handler(), http.MethodGet, "/health", "", map[string]string{RequestIDHeader: "not-a-uuid"})
	if got := w.Header().Get(RequestIDHeader); got == "not-a-uuid" || got == "" {
		t.Errorf("request id = %q, want a fresh UUID", got)
	}

	entries := logs.FilterMessage("request").All()
	if len(entries) != 2 {
		t.Fatalf("got %d access log entries, want 2", len(entries))
	}
	if entries[0].ContextMap()["request_id"] != id {
		t.Errorf("logged request id = %v", entries[0].ContextMap()["request_id"])
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	rl := newRateLimiter(60)
	for i := 0; i < 6; i++ {
		if !rl.Allow("a") {
			t.Fatalf("request %d denied within burst", i)
		}
	}
	if rl.Allow("a") {
		t.Error("request beyond burst allowed")
	}
	if !rl.Allow("b") {
		t.Error("other clients must have their own bucket")
	}
}
