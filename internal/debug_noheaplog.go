//go:build !debugheaplog

package internal

import (
	"context"
	"log/slog"
)

const HeapAllocDebugging = false

func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return l != nil && l.Handler().Enabled(context.Background(), lvl)
}

// LogAttrs is the helper all package loggers go through. The `debugheaplog`
// build tag switches it for a non-allocating printer that reports heap allocations.
func LogAttrs(l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	if level <= slog.LevelDebug {
		for i := range attrs {
			if isRegisterKey(attrs[i].Key) && attrs[i].Value.Kind() == slog.KindUint64 {
				attrs[i] = SlogHex(attrs[i].Key, uint16(attrs[i].Value.Uint64()))
			}
		}
	}
	l.LogAttrs(context.Background(), level, msg, attrs...)
}
