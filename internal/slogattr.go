package internal

import (
	"log/slog"
	"strconv"
)

// SlogHex returns a slog.Attr holding a 16 bit register value formatted as 0x%04x.
func SlogHex(key string, v uint16) slog.Attr {
	var buf [6]byte
	b := strconv.AppendUint(buf[:0], uint64(v), 16)
	const pad = "0x0000"
	return slog.String(key, pad[:6-len(b)]+string(b))
}
