package lan8720

import (
	"log/slog"

	"github.com/soypat/lan8720/internal"
)

func (d *Device) logattrs(lvl slog.Level, msg string, attrs ...slog.Attr) {
	internal.LogAttrs(d.log, lvl, msg, attrs...)
}

func (d *Device) debug(msg string, attrs ...slog.Attr) {
	d.logattrs(slog.LevelDebug, msg, attrs...)
}

func (d *Device) trace(msg string, attrs ...slog.Attr) {
	if internal.LogEnabled(d.log, internal.LevelTrace) {
		d.logattrs(internal.LevelTrace, msg, attrs...)
	}
}

func (d *Device) logerr(msg string, attrs ...slog.Attr) {
	d.logattrs(slog.LevelError, msg, attrs...)
}
