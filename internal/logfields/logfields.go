package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyPost       = "post"
	KeyCategory   = "category"
	KeyCount      = "count"
	KeyOutput     = "output"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Post(title string) slog.Attr     { return slog.String(KeyPost, title) }
func Category(name string) slog.Attr  { return slog.String(KeyCategory, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
