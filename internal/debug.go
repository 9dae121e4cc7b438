package internal

import (
	"log/slog"
	"runtime"
	"sync"
)

// LevelTrace is below debug and logs every register transaction.
const LevelTrace slog.Level = slog.LevelDebug - 2

var (
	memstats    runtime.MemStats
	lastAllocs  uint64
	lastMallocs uint64
	allocmu     sync.Mutex
)

// LogAllocs prints the heap growth since the last call if there was any.
func LogAllocs(msg string) {
	allocmu.Lock()
	defer allocmu.Unlock()
	runtime.ReadMemStats(&memstats)
	if memstats.TotalAlloc == lastAllocs {
		return
	}
	print("[ALLOC] ", msg)
	print(" inc=", int64(memstats.TotalAlloc)-int64(lastAllocs))
	print(" n=", int64(memstats.Mallocs)-int64(lastMallocs))
	print(" heap=", memstats.HeapAlloc)
	println()
	lastAllocs = memstats.TotalAlloc
	lastMallocs = memstats.Mallocs
}

// isRegisterKey reports whether an attribute holds a register address or value,
// which read better in hexadecimal.
func isRegisterKey(key string) bool {
	switch key {
	case "reg", "val", "old", "new", "mask", "id1", "id2":
		return true
	}
	return false
}
