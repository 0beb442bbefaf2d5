package seq

import (
	"log/slog"
	"sync/atomic"
)

const componentKey = "component"

var defaultLogger atomic.Pointer[slog.Logger]

func init() {
	SetLogHandler(nil)
}

// SetLogHandler routes the package's debug records through handler.
// Records are emitted at [slog.LevelDebug] and describe scan decisions such
// as where DropRightWhile cut the list. A nil handler restores the default,
// which discards everything.
//
// Safe to call from multiple goroutines.
func SetLogHandler(handler slog.Handler) {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	defaultLogger.Store(slog.New(handler).With(componentKey, "seq"))
}

func logger() *slog.Logger { return defaultLogger.Load() }
