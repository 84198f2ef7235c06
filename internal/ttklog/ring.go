package ttklog

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Ring is a bounded ring buffer feeding an in-process log pane (the
// layer.Layer pattern from spec §4.5). Its producer side (Fire, Capture)
// is lock-scoped and never blocks (spec §5: "the UI log sink is a bounded
// ring; the producer never blocks").
type Ring struct {
	mu       sync.Mutex
	buf      []LogRecord
	capacity int
	next     int
	filled   bool
}

// NewRing creates a ring buffer holding at most capacity records
// (Config.MaxLogMessages). capacity <= 0 is treated as 1.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{buf: make([]LogRecord, capacity), capacity: capacity}
}

// Levels implements logrus.Hook — the ring buffer captures every level.
func (r *Ring) Levels() []logrus.Level { return logrus.AllLevels }

// Fire implements logrus.Hook, appending one record per log call.
func (r *Ring) Fire(entry *logrus.Entry) error {
	source, _ := entry.Data["subsystem"].(string)
	r.push(LogRecord{
		Timestamp: entry.Time.Format("15:04:05"),
		Source:    source,
		Level:     entry.Level,
		Message:   entry.Message,
	})
	return nil
}

// Capture records a line read from a captured stdout/stderr stream (see
// NewStreamCapture), tagged SourceStream so the log pane can render it
// distinctly.
func (r *Ring) Capture(source, line string) {
	r.push(LogRecord{
		Timestamp:    time.Now().Format("15:04:05"),
		Source:       source,
		Level:        logrus.InfoLevel,
		Message:      line,
		SourceStream: true,
	})
}

func (r *Ring) push(rec LogRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buf[r.next] = rec
	r.next = (r.next + 1) % r.capacity
	if r.next == 0 {
		r.filled = true
	}
}

// Snapshot returns the buffered records in chronological order.
func (r *Ring) Snapshot() []LogRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.filled {
		out := make([]LogRecord, r.next)
		copy(out, r.buf[:r.next])
		return out
	}
	out := make([]LogRecord, r.capacity)
	copy(out, r.buf[r.next:])
	copy(out[r.capacity-r.next:], r.buf[:r.next])
	return out
}
