package line

import (
	"sort"
	"sync"
)

// LogID identifies one room log owned by the collaborator.
type LogID string

// Key identifies one line within a room log. Keys are assigned by identity or
// arrival order, never derived from the text.
type Key uint64

// Cache memoizes annotations per room log. Entries are never evicted one by
// one; a log's entries go away together with Drop.
type Cache struct {
	mu    sync.Mutex
	parse ParseFunc
	logs  map[LogID]map[Key]*Annotation
}

// NewCache creates a cache that annotates with Parse.
func NewCache() *Cache {
	return NewCacheWith(Parse)
}

// NewCacheWith creates a cache that annotates with parse.
func NewCacheWith(parse ParseFunc) *Cache {
	if parse == nil {
		parse = Parse
	}
	return &Cache{
		parse: parse,
		logs:  map[LogID]map[Key]*Annotation{},
	}
}

// Annotate returns the annotation for a line, parsing text only the first
// time the (log, key) pair is seen.
func (c *Cache) Annotate(log LogID, key Key, text string) *Annotation {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines, ok := c.logs[log]
	if !ok {
		lines = map[Key]*Annotation{}
		c.logs[log] = lines
	}
	if a, ok := lines[key]; ok {
		return a
	}

	a := c.parse(text)
	if a == nil {
		a = &Annotation{}
	}
	lines[key] = a
	return a
}

// Peek returns a cached annotation without parsing.
func (c *Cache) Peek(log LogID, key Key) (*Annotation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.logs[log][key]
	return a, ok
}

// Drop forgets every annotation of a discarded log and returns how many
// there were.
func (c *Cache) Drop(log LogID) int {
	c.mu.Lock()
	n := len(c.logs[log])
	delete(c.logs, log)
	c.mu.Unlock()

	if n > 0 {
		logger.Printf("Dropped %d annotations for log %q", n, log)
	}
	return n
}

// Len returns the number of annotations cached for log.
func (c *Cache) Len(log LogID) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.logs[log])
}

// Logs lists the logs that have cached annotations, sorted.
func (c *Cache) Logs() []LogID {
	c.mu.Lock()
	r := make([]LogID, 0, len(c.logs))
	for id := range c.logs {
		r = append(r, id)
	}
	c.mu.Unlock()

	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return r
}
