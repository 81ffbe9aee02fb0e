package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogAdapter creates a SlogAdapter that writes to the given logger at
// Debug level.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger, level: slog.LevelDebug}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	ctx := context.Background()
	if !a.logger.Enabled(ctx, a.level) {
		return
	}

	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("kind", event.Kind.String()),
		slog.Int64("offset", event.Offset),
		slog.Int("depth", event.Depth),
	}
	if event.Source != "" {
		attrs = append(attrs, slog.String("source", event.Source))
	}

	switch {
	case event.Sequence != nil:
		s := event.Sequence
		attrs = append(attrs,
			slog.String("sequence", s.Label),
			slog.String("key", s.Key),
			slog.Bool("known", s.Known),
			slog.String("category", s.Category.String()),
			slog.String("description", s.Description),
		)
		if s.Value != nil {
			attrs = append(attrs, slog.Int("value", int(*s.Value)))
		}
		if s.Action != 0 {
			attrs = append(attrs, slog.String("action", s.Action.String()))
		}
		if s.Overlay != 0 {
			attrs = append(attrs, slog.String("overlay", s.Overlay.String()))
		}
		if s.Level != event.Depth {
			attrs = append(attrs, slog.Int("level", s.Level))
		}
	case event.Session != nil:
		attrs = append(attrs, slog.String("state", event.Session.State.String()))
		if event.Session.State == SessionEnd {
			attrs = append(attrs,
				slog.Uint64("sequences", event.Session.Sequences),
				slog.Uint64("unknown", event.Session.Unknown),
				slog.Int64("bytes", event.Session.Bytes),
			)
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(ctx, a.level, "trace", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
