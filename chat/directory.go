package chat

import (
	"sort"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/scrolls-mods/chatlens/set"
)

// RosterDelta is one roster update for a room: an optional full clear, then
// upserts, then removals.
type RosterDelta struct {
	Updated []User
	Removed []string
	Reset   bool
}

// Lookuper finds a user by name within a room.
type Lookuper interface {
	Lookup(room, name string) (User, bool)
}

// Directory tracks the roster of every room the viewer is in. A room that was
// never reported, or was left, is unknown; that is different from a known
// room with nobody in it. The read methods work on a nil *Directory, which
// knows no rooms.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*set.Set
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		rooms: map[string]*set.Set{},
	}
}

// Names are compared in NFC so one name in two encodings is one user.
func newRoster() *set.Set {
	return set.NewWith(norm.NFC.String)
}

// roster returns the room's roster, creating it. Must hold the write lock.
func (d *Directory) roster(room string) *set.Set {
	r, ok := d.rooms[room]
	if !ok {
		r = newRoster()
		d.rooms[room] = r
	}
	return r
}

// Reset makes room known and empty.
func (d *Directory) Reset(room string) {
	d.mu.Lock()
	d.roster(room).Clear()
	d.mu.Unlock()
}

// ApplyRosterDelta applies one roster update to room, creating the room if it
// is unknown.
func (d *Directory) ApplyRosterDelta(room string, delta RosterDelta) {
	d.mu.Lock()
	defer d.mu.Unlock()

	r := d.roster(room)
	if delta.Reset {
		r.Clear()
	}
	for _, u := range delta.Updated {
		if u.Name == "" {
			logger.Printf("Skipping nameless user %q in room %q", u.ID, room)
			continue
		}
		r.Add(u)
	}
	for _, name := range delta.Removed {
		// Removing someone we never saw is fine.
		r.Remove(name)
	}
}

// LeaveRoom forgets room and everyone in it. Returns false if the room was
// not known.
func (d *Directory) LeaveRoom(room string) bool {
	d.mu.Lock()
	_, ok := d.rooms[room]
	delete(d.rooms, room)
	d.mu.Unlock()
	return ok
}

// Lookup finds name in room.
func (d *Directory) Lookup(room, name string) (User, bool) {
	if d == nil {
		return User{}, false
	}
	d.mu.RLock()
	r, ok := d.rooms[room]
	d.mu.RUnlock()
	if !ok {
		return User{}, false
	}

	item, err := r.Get(name)
	if err != nil {
		return User{}, false
	}
	u, ok := item.Value().(User)
	return u, ok
}

// Known returns whether room has a roster.
func (d *Directory) Known(room string) bool {
	if d == nil {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.rooms[room]
	return ok
}

// Len returns the number of users in room, 0 if unknown.
func (d *Directory) Len(room string) int {
	if d == nil {
		return 0
	}
	d.mu.RLock()
	r, ok := d.rooms[room]
	d.mu.RUnlock()
	if !ok {
		return 0
	}
	return r.Len()
}

// Rooms lists the known rooms, sorted.
func (d *Directory) Rooms() []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	rooms := make([]string, 0, len(d.rooms))
	for room := range d.rooms {
		rooms = append(rooms, room)
	}
	d.mu.RUnlock()

	sort.Strings(rooms)
	return rooms
}

// NamesPrefix lists the names in room starting with prefix, used to query
// for autocompletion purposes.
func (d *Directory) NamesPrefix(room, prefix string) []string {
	if d == nil {
		return nil
	}
	d.mu.RLock()
	r, ok := d.rooms[room]
	d.mu.RUnlock()
	if !ok {
		return nil
	}

	items := r.ListPrefix(prefix)
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Value().(User).Name
	}
	return names
}
