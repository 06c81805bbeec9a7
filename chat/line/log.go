package line

import (
	"sync"
	"time"
)

// Entry is one line held by a Log.
type Entry struct {
	Key       Key
	Text      string
	Timestamp time.Time
}

// Log is a bounded room log that assigns each appended line a fresh Key, for
// collaborators that have no line identity of their own. Keys keep
// increasing after old lines fall off the end, so a Key is never reused.
type Log struct {
	ID LogID

	entries []Entry
	head    int
	size    int
	next    Key
	sync.RWMutex
}

// NewLog constructs a log that keeps the last size lines.
func NewLog(id LogID, size int) *Log {
	if size < 1 {
		size = 1
	}
	return &Log{
		ID:      id,
		entries: make([]Entry, size),
	}
}

// Append adds a line stamped with now and returns its entry.
func (l *Log) Append(text string) Entry {
	return l.AppendAt(text, time.Now())
}

// AppendAt adds a line with an explicit timestamp.
func (l *Log) AppendAt(text string, ts time.Time) Entry {
	l.Lock()
	defer l.Unlock()

	max := len(l.entries)
	l.head = (l.head + 1) % max
	e := Entry{Key: l.next, Text: text, Timestamp: ts}
	l.next++
	l.entries[l.head] = e
	if l.size < max {
		l.size++
	}
	return e
}

// Len returns the number of lines held.
func (l *Log) Len() int {
	l.RLock()
	defer l.RUnlock()
	return l.size
}

// Lines returns the held lines, oldest first.
func (l *Log) Lines() []Entry {
	return l.Recent(l.Len())
}

// Recent returns up to num of the newest lines, oldest first.
func (l *Log) Recent(num int) []Entry {
	l.RLock()
	defer l.RUnlock()

	max := len(l.entries)
	if num > l.size {
		num = l.size
	}

	r := make([]Entry, num)
	for i := 0; i < num; i++ {
		idx := (l.head - i) % max
		if idx < 0 {
			idx += max
		}
		r[num-i-1] = l.entries[idx]
	}
	return r
}

// Get returns the held line with the given key.
func (l *Log) Get(key Key) (Entry, bool) {
	l.RLock()
	defer l.RUnlock()
	for i := 0; i < l.size; i++ {
		idx := (l.head - i) % len(l.entries)
		if idx < 0 {
			idx += len(l.entries)
		}
		if l.entries[idx].Key == key {
			return l.entries[idx], true
		}
	}
	return Entry{}, false
}
