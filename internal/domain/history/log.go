package history

import (
	"sync"
	"time"
)

// Record is one completed, non-erroring operation. Never mutated after
// creation.
type Record struct {
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	Category   string    `json:"category" yaml:"category" toml:"category"`
	SourceUnit string    `json:"source_unit" yaml:"source_unit" toml:"source_unit"`
	TargetUnit string    `json:"target_unit" yaml:"target_unit" toml:"target_unit"`
	Input      string    `json:"input" yaml:"input" toml:"input"`
	Output     string    `json:"output" yaml:"output" toml:"output"`
	Precision  int       `json:"precision" yaml:"precision" toml:"precision"`
}

// Log is an append-only sequence of records scoped to one session.
// Appends take a single writer lock so the log is safe to share between
// the HTTP handler and the WebSocket stream.
type Log struct {
	mu      sync.RWMutex
	records []Record
	subs    map[chan Record]struct{}
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{subs: make(map[chan Record]struct{})}
}

// Append adds a record to the end of the log and notifies subscribers.
// Entries are never reordered or deleted.
func (l *Log) Append(rec Record) {
	l.mu.Lock()
	l.records = append(l.records, rec)
	for ch := range l.subs {
		// Non-blocking: a slow subscriber drops the notification
		// rather than stalling the conversion path.
		select {
		case ch <- rec:
		default:
		}
	}
	l.mu.Unlock()
}

// Records returns a copy of all records in insertion order.
func (l *Log) Records() []Record {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Subscribe registers a channel that receives every record appended after
// this call. The channel should be buffered.
func (l *Log) Subscribe() chan Record {
	ch := make(chan Record, 64)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (l *Log) Unsubscribe(ch chan Record) {
	l.mu.Lock()
	if _, ok := l.subs[ch]; ok {
		delete(l.subs, ch)
		close(ch)
	}
	l.mu.Unlock()
}
