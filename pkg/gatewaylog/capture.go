package gatewaylog

import "sync"

// Entry is one captured log line.
type Entry struct {
	Level  string
	Action string
	Fields Fields
}

// Capture records entries in memory. Intended for tests.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) record(level, action string, fields Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{Level: level, Action: action, Fields: sanitize(fields)})
}

func (c *Capture) Info(action string, fields Fields)  { c.record("info", action, fields) }
func (c *Capture) Warn(action string, fields Fields)  { c.record("warn", action, fields) }
func (c *Capture) Error(action string, fields Fields) { c.record("error", action, fields) }

// Entries returns a copy of everything recorded so far.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Seen reports whether an entry with the given action was recorded.
func (c *Capture) Seen(action string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.Action == action {
			return true
		}
	}
	return false
}
