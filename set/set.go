package set

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Returned when a requested item does not exist in the set.
var ErrMissing = errors.New("item does not exist")

// Returned when a nil item is added.
var ErrNil = errors.New("item value must not be nil")

type IterFunc func(key string, item Item) error

// NormalizeFunc maps a key to the form it is stored under.
type NormalizeFunc func(string) string

type Set struct {
	sync.RWMutex
	lookup    map[string]Item
	normalize NormalizeFunc
}

// New creates a new set with case-insensitive keys
func New() *Set {
	return NewWith(strings.ToLower)
}

// NewWith creates a new set whose keys are passed through normalize before
// every lookup. A nil normalize keeps keys exactly as given.
func NewWith(normalize NormalizeFunc) *Set {
	if normalize == nil {
		normalize = exact
	}
	return &Set{
		lookup:    map[string]Item{},
		normalize: normalize,
	}
}

// Clear removes all items and returns the number removed.
func (s *Set) Clear() int {
	s.Lock()
	n := len(s.lookup)
	s.lookup = map[string]Item{}
	s.Unlock()
	return n
}

// Len returns the size of the set right now.
func (s *Set) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.lookup)
}

// Get returns an item with the given key.
func (s *Set) Get(key string) (Item, error) {
	key = s.normalize(key)
	s.RLock()
	item, ok := s.lookup[key]
	s.RUnlock()

	if !ok {
		return nil, ErrMissing
	}
	return item, nil
}

// Add to set, replacing if item already exists.
func (s *Set) Add(item Item) error {
	if item.Value() == nil {
		return ErrNil
	}
	key := s.normalize(item.Key())

	s.Lock()
	s.lookup[key] = item
	s.Unlock()
	return nil
}

// Remove item from this set.
func (s *Set) Remove(key string) error {
	key = s.normalize(key)

	s.Lock()
	defer s.Unlock()

	if _, found := s.lookup[key]; !found {
		return ErrMissing
	}
	delete(s.lookup, key)
	return nil
}

// Each loops over every item while holding a read lock and applies fn to each
// element.
func (s *Set) Each(fn IterFunc) error {
	s.RLock()
	defer s.RUnlock()
	for key, item := range s.lookup {
		if err := fn(key, item); err != nil {
			// Abort early
			return err
		}
	}
	return nil
}

// ListPrefix returns the items whose normalized key has the normalized
// prefix, ordered by key.
func (s *Set) ListPrefix(prefix string) []Item {
	r := []Item{}
	prefix = s.normalize(prefix)

	s.Each(func(key string, item Item) error {
		if strings.HasPrefix(key, prefix) {
			r = append(r, item)
		}
		return nil
	})

	sort.Slice(r, func(i, j int) bool {
		return s.normalize(r[i].Key()) < s.normalize(r[j].Key())
	})
	return r
}

func exact(key string) string {
	return key
}
