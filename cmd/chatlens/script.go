package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scrolls-mods/chatlens"
	"github.com/scrolls-mods/chatlens/chat"
	"github.com/scrolls-mods/chatlens/chat/line"
)

// The error returned when an event sets none or several of its fields.
var ErrBadEvent = errors.New("event must set exactly one action")

// Script is a recorded chat session to replay.
type Script struct {
	Viewer string  `yaml:"viewer"`
	Events []Event `yaml:"events"`
}

// Event is one step of a script. Exactly one field is set.
type Event struct {
	Roster  *RosterEvent `yaml:"roster"`
	Line    *LineEvent   `yaml:"line"`
	Click   *ClickEvent  `yaml:"click"`
	Select  *int         `yaml:"select"`
	Close   bool         `yaml:"close"`
	Leave   string       `yaml:"leave"`
	Discard string       `yaml:"discard"`
}

// RosterEvent is a room info update.
type RosterEvent struct {
	Room    string       `yaml:"room"`
	Reset   bool         `yaml:"reset"`
	Updated []ScriptUser `yaml:"updated"`
	Removed []string     `yaml:"removed"`
}

// ScriptUser is a roster entry as written in a script.
type ScriptUser struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Display    string `yaml:"display"`
	Admin      string `yaml:"admin"`
	Challenges bool   `yaml:"challenges"`
	Trades     bool   `yaml:"trades"`
	Blocked    bool   `yaml:"blocked"`
	Friend     bool   `yaml:"friend"`
	Pending    bool   `yaml:"pending"`
}

// LineEvent is a chat line arriving in a room log.
type LineEvent struct {
	Log  string `yaml:"log"`
	Room string `yaml:"room"`
	Text string `yaml:"text"`
}

// ClickEvent is a click on a line. Without a key the newest line is clicked.
type ClickEvent struct {
	Log string  `yaml:"log"`
	Key *uint64 `yaml:"key"`
}

func (e Event) kind() (string, error) {
	var set []string
	if e.Roster != nil {
		set = append(set, "roster")
	}
	if e.Line != nil {
		set = append(set, "line")
	}
	if e.Click != nil {
		set = append(set, "click")
	}
	if e.Select != nil {
		set = append(set, "select")
	}
	if e.Close {
		set = append(set, "close")
	}
	if e.Leave != "" {
		set = append(set, "leave")
	}
	if e.Discard != "" {
		set = append(set, "discard")
	}
	if len(set) != 1 {
		return "", fmt.Errorf("%w, got [%s]", ErrBadEvent, strings.Join(set, " "))
	}
	return set[0], nil
}

func (u ScriptUser) user() (chat.User, error) {
	role, err := chat.ParseAdminRole(u.Admin)
	if err != nil {
		return chat.User{}, err
	}
	id := u.ID
	if id == "" {
		id = u.Name
	}
	return chat.User{
		ID:                id,
		Name:              u.Name,
		DisplayName:       u.Display,
		AdminRole:         role,
		AcceptsChallenges: u.Challenges,
		AcceptsTrades:     u.Trades,
		Blocked:           u.Blocked,
		Friend:            u.Friend,
		FriendPending:     u.Pending,
	}, nil
}

// ReadScript decodes and checks a YAML script.
func ReadScript(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	for i, e := range s.Events {
		if _, err := e.kind(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return &s, nil
}

// Replay drives a Host the way a chat window would.
type Replay struct {
	host    *chatlens.Host
	out     io.Writer
	logSize int
	logs    map[line.LogID]*line.Log
	rooms   map[line.LogID]string
}

// NewReplay creates a replay that prints menus to out.
func NewReplay(host *chatlens.Host, logSize int, out io.Writer) *Replay {
	return &Replay{
		host:    host,
		out:     out,
		logSize: logSize,
		logs:    map[line.LogID]*line.Log{},
		rooms:   map[line.LogID]string{},
	}
}

// Run replays every event of s in order. Rejected clicks and selections are
// reported and do not stop the replay.
func (r *Replay) Run(s *Script) error {
	for i, e := range s.Events {
		if err := r.apply(e); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func (r *Replay) apply(e Event) error {
	kind, err := e.kind()
	if err != nil {
		return err
	}

	switch kind {
	case "roster":
		updated := make([]chat.User, 0, len(e.Roster.Updated))
		for _, su := range e.Roster.Updated {
			u, err := su.user()
			if err != nil {
				return err
			}
			updated = append(updated, u)
		}
		r.host.OnRosterInfo(e.Roster.Room, updated, e.Roster.Removed, e.Roster.Reset)
	case "leave":
		r.host.OnRoomLeft(e.Leave)
	case "discard":
		id := line.LogID(e.Discard)
		delete(r.logs, id)
		delete(r.rooms, id)
		r.host.OnLogDiscarded(id)
	case "line":
		id := line.LogID(e.Line.Log)
		if id == "" {
			id = line.LogID(e.Line.Room)
		}
		l, ok := r.logs[id]
		if !ok {
			l = line.NewLog(id, r.logSize)
			r.logs[id] = l
		}
		r.rooms[id] = e.Line.Room
		entry := l.Append(e.Line.Text)
		r.host.Render(id, entry.Key, entry.Text, e.Line.Room)
	case "click":
		r.click(e.Click)
	case "select":
		action, err := r.host.Select(*e.Select)
		if err != nil {
			fmt.Fprintf(r.out, "! select %d: %s\n", *e.Select, err)
		} else {
			fmt.Fprintf(r.out, "selected %s\n", action)
		}
	case "close":
		r.host.CloseMenu()
	}
	return nil
}

func (r *Replay) click(c *ClickEvent) {
	id := line.LogID(c.Log)
	l, ok := r.logs[id]
	if !ok {
		fmt.Fprintf(r.out, "! click: unknown log %q\n", id)
		return
	}

	var entry line.Entry
	if c.Key == nil {
		lines := l.Recent(1)
		if len(lines) == 0 {
			fmt.Fprintf(r.out, "! click: log %q is empty\n", id)
			return
		}
		entry = lines[0]
	} else if entry, ok = l.Get(line.Key(*c.Key)); !ok {
		fmt.Fprintf(r.out, "! click: no line %d in %q\n", *c.Key, id)
		return
	}

	rendered := r.host.Render(id, entry.Key, entry.Text, r.rooms[id])
	menu, err := r.host.Click(rendered)
	switch {
	case err != nil:
		fmt.Fprintf(r.out, "! click %s/%d: %s\n", id, entry.Key, err)
	case menu == nil:
		fmt.Fprintf(r.out, "no menu for %q\n", entry.Text)
	default:
		fmt.Fprintf(r.out, "menu for %q:\n", entry.Text)
		for i, a := range menu.Actions {
			fmt.Fprintf(r.out, "  [%d] %s %s\n", i, a.Label(), a.Target())
		}
	}
}
