package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU time buckets. The app loop resets them at the start of each
// frame and prints the largest when a frame runs long.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
)

// Entry is one named bucket of the current frame
type Entry struct {
	Name     string
	Duration time.Duration
}

func (e Entry) String() string {
	ms := float64(e.Duration.Microseconds()) / 1000.0
	return e.Name + ":" + strconv.FormatFloat(ms, 'f', 1, 64) + "ms"
}

// Track returns a stop function that adds the elapsed time to the named bucket.
// Usage: defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the current frame's buckets.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	mu.Unlock()
}

// Snapshot returns a copy of the current frame's buckets.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// Top returns up to n buckets, largest first. Ties sort by name.
func Top(n int) []Entry {
	ss := Snapshot()
	entries := make([]Entry, 0, len(ss))
	for name, d := range ss {
		entries = append(entries, Entry{Name: name, Duration: d})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Duration != entries[j].Duration {
			return entries[i].Duration > entries[j].Duration
		}
		return entries[i].Name < entries[j].Name
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// TopN formats Top(n) for logging, e.g.
// "renderer.Render:4.2ms, renderer.cube:4.1ms".
func TopN(n int) string {
	entries := Top(n)
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
