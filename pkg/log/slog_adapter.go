package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes load events to an slog.Logger.
// Useful for development when you want to see load events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger. Rejected properties and failed
// loads are logged at Warn level, everything else at Debug.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("load_id", event.LoadID),
		slog.String("category", event.Category.String()),
	}

	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}
	if event.Namespace != "" {
		attrs = append(attrs, slog.String("namespace", event.Namespace))
	}

	switch event.Category {
	case CategoryPropertyAccepted, CategoryPropertyRejected:
		attrs = append(attrs, slog.String("property", formatPropertyID(event.PropertyID)))
	case CategoryLoadFinished:
		attrs = append(attrs, slog.Int("properties", event.Count))
	}

	level := slog.LevelDebug
	if len(event.Messages) > 0 {
		level = slog.LevelWarn
		attrs = append(attrs, slog.Any("errors", event.Messages))
	}

	a.logger.LogAttrs(context.Background(), level, "config load event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
