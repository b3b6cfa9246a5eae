package log

import "sync"

// Logger receives load events. One loader may serve concurrent loads, so
// implementations must be safe for concurrent use.
type Logger interface {
	Log(event Event)
}

// NoopLogger discards all events.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// Collector keeps events in memory, grouped by load id in arrival order.
// The zero value is ready to use.
type Collector struct {
	mu     sync.Mutex
	events []Event
	loads  []string
	seen   map[string]bool
}

// Log records the event.
func (c *Collector) Log(event Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event)
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	if !c.seen[event.LoadID] {
		c.seen[event.LoadID] = true
		c.loads = append(c.loads, event.LoadID)
	}
}

// Events returns a copy of every recorded event.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Event(nil), c.events...)
}

// Loads returns the load ids seen, in order of their first event.
func (c *Collector) Loads() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.loads...)
}

// ForLoad returns the events of one load.
func (c *Collector) ForLoad(id string) []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []Event
	for _, e := range c.events {
		if e.LoadID == id {
			out = append(out, e)
		}
	}
	return out
}

// Result returns the closing event of a load: LOAD_FINISHED or LOAD_FAILED.
func (c *Collector) Result(id string) (Event, bool) {
	events := c.ForLoad(id)
	for i := len(events) - 1; i >= 0; i-- {
		switch events[i].Category {
		case CategoryLoadFinished, CategoryLoadFailed:
			return events[i], true
		}
	}
	return Event{}, false
}

var (
	_ Logger = NoopLogger{}
	_ Logger = (*Collector)(nil)
)
