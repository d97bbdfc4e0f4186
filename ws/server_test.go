package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/pkg/errors"

	"ebiten-caves/config"
	"ebiten-caves/protocol"
)

func testConfig() config.CaveConfig {
	cfg := config.DefaultCaveConfig()
	cfg.Width, cfg.Height = 24, 20
	cfg.Seed = "limestone"
	cfg.UseRandomSeed = false
	return cfg
}

func decodeSnapshot(t *testing.T, data []byte) protocol.CaveSnapshot {
	t.Helper()
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("Unexpected error decoding envelope: %v", err)
	}
	if env.Type != protocol.TypeSnapshot {
		t.Fatalf("Expected %s envelope, got %s", protocol.TypeSnapshot, env.Type)
	}
	var snap protocol.CaveSnapshot
	if err := json.Unmarshal(env.Payload, &snap); err != nil {
		t.Fatalf("Unexpected error decoding snapshot: %v", err)
	}
	return snap
}

func TestNewServerGeneratesFirstCave(t *testing.T) {
	s, err := NewServer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	snap := decodeSnapshot(t, s.Current())
	if snap.Seed != "limestone" {
		t.Errorf("Expected seed limestone, got %s", snap.Seed)
	}
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	if _, err := NewServer(cfg); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestHandleMessage(t *testing.T) {
	s, err := NewServer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	t.Run("Regenerate with seed", func(t *testing.T) {
		out, err := s.HandleMessage([]byte(`{"type":"Regenerate","payload":{"seed":"chalk"}}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if snap := decodeSnapshot(t, out); snap.Seed != "chalk" {
			t.Errorf("Expected seed chalk, got %s", snap.Seed)
		}
		if string(s.Current()) != string(out) {
			t.Errorf("Expected current snapshot to be replaced")
		}
	})

	t.Run("Regenerate without seed", func(t *testing.T) {
		out, err := s.HandleMessage([]byte(`{"type":"Regenerate"}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if snap := decodeSnapshot(t, out); snap.Seed == "chalk" || snap.Seed == "" {
			t.Errorf("Expected a fresh random seed, got %q", snap.Seed)
		}
	})

	t.Run("Set field", func(t *testing.T) {
		out, err := s.HandleMessage([]byte(`{"type":"Set","payload":{"field":"width","value":30}}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		snap := decodeSnapshot(t, out)
		if snap.Width != 32 {
			t.Errorf("Expected bordered width 32, got %d", snap.Width)
		}
	})

	t.Run("Set field replays the seed", func(t *testing.T) {
		before := decodeSnapshot(t, s.Current())
		out, err := s.HandleMessage([]byte(`{"type":"Set","payload":{"field":"borderSize","value":2}}`))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		after := decodeSnapshot(t, out)
		if after.Seed != before.Seed {
			t.Errorf("Expected seed %q to be kept, got %q", before.Seed, after.Seed)
		}
		if after.BorderSize != 2 {
			t.Errorf("Expected border 2, got %d", after.BorderSize)
		}
	})

	rejects := []struct {
		name    string
		message string
		target  error
	}{
		{"Unknown type", `{"type":"Teleport"}`, ErrUnknownRequest},
		{"Unknown field", `{"type":"Set","payload":{"field":"colour","value":1}}`, config.ErrUnknownField},
		{"Out of range", `{"type":"Set","payload":{"field":"fillPercent","value":140}}`, config.ErrInvalidConfig},
	}
	for _, tt := range rejects {
		t.Run(tt.name, func(t *testing.T) {
			before := s.Current()
			_, err := s.HandleMessage([]byte(tt.message))
			if !errors.Is(err, tt.target) {
				t.Errorf("Expected %v, got %v", tt.target, err)
			}
			if string(s.Current()) != string(before) {
				t.Errorf("Expected rejected request to leave the cave untouched")
			}
		})
	}

	t.Run("Malformed JSON", func(t *testing.T) {
		if _, err := s.HandleMessage([]byte(`{"type":`)); err == nil {
			t.Errorf("Expected decode error")
		}
	})
}

func TestServeStream(t *testing.T) {
	s, err := NewServer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Unexpected error dialing: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(1 << 24)

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("Unexpected error reading greeting: %v", err)
	}
	if snap := decodeSnapshot(t, data); snap.Seed != "limestone" {
		t.Errorf("Expected greeting for seed limestone, got %s", snap.Seed)
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"Regenerate","payload":{"seed":"flint"}}`)); err != nil {
		t.Fatalf("Unexpected error writing: %v", err)
	}
	_, data, err = conn.Read(ctx)
	if err != nil {
		t.Fatalf("Unexpected error reading broadcast: %v", err)
	}
	if snap := decodeSnapshot(t, data); snap.Seed != "flint" {
		t.Errorf("Expected broadcast for seed flint, got %s", snap.Seed)
	}

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"Teleport"}`)); err != nil {
		t.Fatalf("Unexpected error writing: %v", err)
	}
	_, data, err = conn.Read(ctx)
	if err != nil {
		t.Fatalf("Unexpected error reading reply: %v", err)
	}
	var env protocol.Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Type != protocol.TypeError {
		t.Errorf("Expected an Error envelope, got %s (%v)", env.Type, err)
	}
}

func TestIndexPage(t *testing.T) {
	s, err := NewServer(testConfig())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "/stream") {
		t.Errorf("Expected index page, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))
	if rec.Code != 404 {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
