package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestPrettyHandler_FlattensGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil))

	log.Info("match finished",
		"winner", "A",
		slog.Group("search", "depth", 3, "budget_ms", 40),
	)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["msg"] != "match finished" {
		t.Errorf("msg = %v", got["msg"])
	}
	if got["winner"] != "A" {
		t.Errorf("winner = %v", got["winner"])
	}
	if got["search.depth"] != float64(3) {
		t.Errorf("search.depth = %v", got["search.depth"])
	}
	if _, ok := got["time"]; !ok {
		t.Error("missing time")
	}
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info leaked through a warn filter: %s", buf.String())
	}

	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn record missing")
	}
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewPrettyHandler(&buf, nil)).With("match_id", "m1").WithGroup("tick")

	log.Info("frame", "n", 12)

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if got["match_id"] != "m1" {
		t.Errorf("match_id = %v", got["match_id"])
	}
	if got["tick.n"] != float64(12) {
		t.Errorf("tick.n = %v", got["tick.n"])
	}
}
