//go:build debugheaplog

package internal

import (
	"log/slog"
	"time"
	"unsafe"
)

const (
	HeapAllocDebugging = true
	timefmt            = "[01-02 15:04:05.000]"
)

var (
	timebuf [len(timefmt) * 2]byte
	hexbuf  [6]byte
)

func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return true
}

// LogAttrs prints with the runtime print builtins so that logging itself does not
// allocate, then reports any heap allocation that happened since the previous log.
func LogAttrs(_ *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	n := len(time.Now().AppendFormat(timebuf[:0], timefmt))
	LogAllocs(msg)
	print("time=", unsafe.String(&timebuf[0], n), " ")
	if level == LevelTrace {
		print("TRACE ")
	} else {
		print(level.String(), " ")
	}
	print(msg)
	for _, a := range attrs {
		switch a.Value.Kind() {
		case slog.KindString:
			print(" ", a.Key, "=", a.Value.String())
		case slog.KindInt64:
			print(" ", a.Key, "=", a.Value.Int64())
		case slog.KindUint64:
			if isRegisterKey(a.Key) {
				print(" ", a.Key, "=", hex16(a.Value.Uint64()))
			} else {
				print(" ", a.Key, "=", a.Value.Uint64())
			}
		case slog.KindBool:
			print(" ", a.Key, "=", a.Value.Bool())
		}
	}
	println()
}

func hex16(v uint64) string {
	const digits = "0123456789abcdef"
	hexbuf[0], hexbuf[1] = '0', 'x'
	for i := 5; i >= 2; i-- {
		hexbuf[i] = digits[v&0xf]
		v >>= 4
	}
	return unsafe.String(&hexbuf[0], len(hexbuf))
}
