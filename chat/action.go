package chat

import "fmt"

// ActionKind is one slot of a line's context menu.
type ActionKind int

// Kinds in the order they appear in a menu.
const (
	OpenLink ActionKind = iota
	Challenge
	Trade
	Whisper
	ViewProfile
	AddFriend
	Block
	Unblock
)

var kindNames = map[ActionKind]string{
	OpenLink:    "OpenLink",
	Challenge:   "Challenge",
	Trade:       "Trade",
	Whisper:     "Whisper",
	ViewProfile: "ViewProfile",
	AddFriend:   "AddFriend",
	Block:       "Block",
	Unblock:     "Unblock",
}

var kindLabels = map[ActionKind]string{
	OpenLink:    "Open Link",
	Challenge:   "Challenge",
	Trade:       "Trade",
	Whisper:     "Whisper",
	ViewProfile: "Profile",
	AddFriend:   "Add Friend",
	Block:       "Ignore",
	Unblock:     "Unignore",
}

func (k ActionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Label is the menu text for the kind.
func (k ActionKind) Label() string {
	if s, ok := kindLabels[k]; ok {
		return s
	}
	return k.String()
}

// Action is a menu entry. OpenLink actions carry URL; every other kind
// carries User.
type Action struct {
	Kind ActionKind
	URL  string
	User User
}

// LinkAction returns an OpenLink action for url.
func LinkAction(url string) Action {
	return Action{Kind: OpenLink, URL: url}
}

// UserAction returns a user-targeted action.
func UserAction(kind ActionKind, u User) Action {
	return Action{Kind: kind, User: u}
}

// Label is the menu text for the action.
func (a Action) Label() string {
	return a.Kind.Label()
}

// Target is the URL or user name the action applies to.
func (a Action) Target() string {
	if a.Kind == OpenLink {
		return a.URL
	}
	return a.User.Name
}

func (a Action) String() string {
	return fmt.Sprintf("%s(%s)", a.Kind, a.Target())
}
