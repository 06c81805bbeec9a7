package chat

import "github.com/scrolls-mods/chatlens/chat/line"

// Session is the long-lived state of one chat window: the annotation cache
// and the room directory. The window calls the On* methods as events happen.
type Session struct {
	Lines     *line.Cache
	Directory *Directory
}

// NewSession creates a session with an empty cache and directory.
func NewSession() *Session {
	return NewSessionWith(line.NewCache())
}

// NewSessionWith creates a session around an existing annotation cache.
func NewSessionWith(lines *line.Cache) *Session {
	return &Session{
		Lines:     lines,
		Directory: NewDirectory(),
	}
}

// OnRoomLeft drops everything known about room.
func (s *Session) OnRoomLeft(room string) {
	if !s.Directory.LeaveRoom(room) {
		logger.Printf("Left unknown room %q", room)
	}
}

// OnRosterInfo applies a roster update to room.
func (s *Session) OnRosterInfo(room string, updated []User, removed []string, reset bool) {
	s.Directory.ApplyRosterDelta(room, RosterDelta{
		Updated: updated,
		Removed: removed,
		Reset:   reset,
	})
}

// OnLogDiscarded forgets the annotations of a room log the window no longer
// keeps.
func (s *Session) OnLogDiscarded(log line.LogID) {
	s.Lines.Drop(log)
}

// OnRenderLine annotates a line being drawn. Drawing every frame is cheap:
// the text is parsed only the first time a line is seen.
func (s *Session) OnRenderLine(log line.LogID, key line.Key, text string, room string, viewerID string) RenderedLine {
	return RenderedLine{
		Log:        log,
		Key:        key,
		Text:       text,
		Room:       room,
		Viewer:     viewerID,
		Annotation: s.Lines.Annotate(log, key, text),
		dir:        s.Directory,
	}
}

// RenderedLine is a drawn line and what is needed to build its menu.
type RenderedLine struct {
	Log        line.LogID
	Key        line.Key
	Text       string
	Room       string
	Viewer     string
	Annotation *line.Annotation

	dir Lookuper
}

// Interactive reports whether the line should be drawn as clickable.
func (l RenderedLine) Interactive() bool {
	return l.Annotation.Interactive()
}

// Actions resolves the line's menu against the current roster. Call it when
// the viewer interacts with the line.
func (l RenderedLine) Actions() []Action {
	return Resolve(l.Annotation, l.Room, l.Viewer, l.dir)
}
