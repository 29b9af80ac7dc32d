package tessel

import (
	"context"
	"log/slog"
)

// logFill records one fill at debug level. The Enabled check keeps the
// default silent logger from paying for attribute construction.
func logFill(shape string, st Stats) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, "tessel: fill",
		slog.String("shape", shape),
		slog.Int("points", st.Points),
		slog.Int("triangles", st.Triangles),
		slog.Int("batches", st.Batches),
	)
}
