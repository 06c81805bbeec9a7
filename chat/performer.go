package chat

import (
	"errors"
	"fmt"
)

// The error returned when an action of an unknown kind is dispatched.
var ErrUnknownAction = errors.New("unknown action")

// LinkOpener opens a URL for the viewer.
type LinkOpener interface {
	OpenLink(url string) error
}

// UserActions are the user-targeted side effects offered by the chat window.
type UserActions interface {
	Challenge(User) error
	Trade(User) error
	Whisper(User) error
	Profile(User) error
	AddFriend(User) error
	Block(User) error
	Unblock(User) error
}

// Performer carries out any Action.
type Performer interface {
	LinkOpener
	UserActions
}

// Dispatch performs a on p.
func Dispatch(p Performer, a Action) error {
	var err error
	switch a.Kind {
	case OpenLink:
		err = p.OpenLink(a.URL)
	case Challenge:
		err = p.Challenge(a.User)
	case Trade:
		err = p.Trade(a.User)
	case Whisper:
		err = p.Whisper(a.User)
	case ViewProfile:
		err = p.Profile(a.User)
	case AddFriend:
		err = p.AddFriend(a.User)
	case Block:
		err = p.Block(a.User)
	case Unblock:
		err = p.Unblock(a.User)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, a.Kind)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", a.Kind, a.Target(), err)
	}
	return nil
}
