package phy

import (
	"context"
	"log/slog"

	"github.com/soypat/lan8720/internal"
)

func (phy *Device) logenabled(lvl slog.Level) bool {
	return internal.HeapAllocDebugging || (phy.log != nil && phy.log.Handler().Enabled(context.Background(), lvl))
}

func (phy *Device) logattrs(lvl slog.Level, msg string, attrs ...slog.Attr) {
	internal.LogAttrs(phy.log, lvl, msg, attrs...)
}

func (phy *Device) debug(msg string, attrs ...slog.Attr) {
	phy.logattrs(slog.LevelDebug, msg, attrs...)
}

func (phy *Device) trace(msg string, attrs ...slog.Attr) {
	if phy.logenabled(internal.LevelTrace) {
		phy.logattrs(internal.LevelTrace, msg, attrs...)
	}
}

func (phy *Device) logerr(msg string, attrs ...slog.Attr) {
	phy.logattrs(slog.LevelError, msg, attrs...)
}
