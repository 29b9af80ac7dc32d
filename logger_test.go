package tessel

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// captureHandler keeps every record it receives.
type captureHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	h.records = append(h.records, r)
	h.mu.Unlock()
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *captureHandler) WithGroup(string) slog.Handler      { return h }

func attrs(r slog.Record) map[string]slog.Value {
	out := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value
		return true
	})
	return out
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestLoggerFillRecord(t *testing.T) {
	h := &captureHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })

	if err := NewContext().FillPolygon(&fakeBackend{}, regularPolygon(8, 1)); err != nil {
		t.Fatal(err)
	}
	if len(h.records) != 1 {
		t.Fatalf("records = %d, want 1", len(h.records))
	}
	r := h.records[0]
	if r.Level != slog.LevelDebug {
		t.Errorf("level = %v, want debug", r.Level)
	}
	a := attrs(r)
	if a["shape"].String() != "polygon" || a["triangles"].Int64() != 6 || a["batches"].Int64() != 1 {
		t.Errorf("attrs = %v", a)
	}
}

func TestLoggerWarnsOnMissingCapability(t *testing.T) {
	h := &captureHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })

	_ = NewContext().FillRect(&fakeBackend{noTriList: true}, Rect{0, 0, 1, 1})
	if len(h.records) != 1 || h.records[0].Level != slog.LevelWarn {
		t.Fatalf("records = %v, want one warning", h.records)
	}
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(slog.New(&captureHandler{}))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
}
