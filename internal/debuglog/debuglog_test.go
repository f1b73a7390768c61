package debuglog

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/javiermolinar/afazeres/internal/extract"
)

var thursday = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestInit_WritesJSONEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	if err := Init(true, path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	LogExtract("cli", extract.Extract("amanhã às 9 #casa", thursday))
	LogError("clipboard", errors.New("no display"))
	Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var events []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(sc.Bytes(), &entry); err != nil {
			t.Fatalf("line %q is not JSON: %v", sc.Text(), err)
		}
		events = append(events, entry)
	}

	var msgs []string
	for _, e := range events {
		msgs = append(msgs, e["msg"].(string))
	}
	want := []string{"debug_start", "extract", "error", "debug_end"}
	if len(msgs) != len(want) {
		t.Fatalf("got events %v, want %v", msgs, want)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, msgs[i], want[i])
		}
	}

	ex := events[1]
	if ex["source"] != "cli" || ex["date_rule"] != "tomorrow" || ex["time"] != "09:00" {
		t.Errorf("unexpected extract event %v", ex)
	}
}

func TestInit_Disabled(t *testing.T) {
	if err := Init(false, ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if L().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("disabled logger should drop everything")
	}
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	logger.Debug("extract", Fields(extract.Extract("30/02/2023", thursday))...)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["date_shape"] != "numeric" {
		t.Errorf("date_shape = %v, want numeric", ctx["date_shape"])
	}
	if ctx["date_err"] != "invalid calendar date: 30/2/2023" {
		t.Errorf("date_err = %v", ctx["date_err"])
	}
	if ctx["empty"] != true {
		t.Errorf("empty = %v, want true", ctx["empty"])
	}
	if _, ok := ctx["date"]; ok {
		t.Error("an invalid date must not log a date field")
	}
}
