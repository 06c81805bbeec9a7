package chat

import (
	"errors"
	"fmt"
	"strings"
)

// The error returned when parsing an admin role that does not exist.
var ErrUnknownRole = errors.New("unknown admin role")

// AdminRole is the staff level a room shows next to a user.
type AdminRole int

const (
	RoleNone AdminRole = iota
	RoleModerator
	RoleAdmin
)

func (r AdminRole) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleModerator:
		return "moderator"
	case RoleAdmin:
		return "admin"
	}
	return fmt.Sprintf("AdminRole(%d)", int(r))
}

// ParseAdminRole parses the String form of a role. Empty means RoleNone.
func ParseAdminRole(s string) (AdminRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RoleNone, nil
	case "moderator", "mod":
		return RoleModerator, nil
	case "admin":
		return RoleAdmin, nil
	}
	return RoleNone, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// User is one roster entry of a room, keyed by Name.
type User struct {
	ID          string
	Name        string
	DisplayName string
	AdminRole   AdminRole

	AcceptsChallenges bool
	AcceptsTrades     bool

	// Relationship to the viewer.
	Blocked       bool
	Friend        bool
	FriendPending bool
}

// Key implements set.Item.
func (u User) Key() string {
	return u.Name
}

// Value implements set.Item.
func (u User) Value() interface{} {
	return u
}

// Label is the name to show for the user.
func (u User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Name
}

func (u User) String() string {
	return fmt.Sprintf("%s (%s)", u.Name, u.ID)
}
