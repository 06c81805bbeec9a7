package chat

import "github.com/scrolls-mods/chatlens/chat/line"

// Resolve returns the menu for an annotated line in room as seen by viewerID:
// one OpenLink per link, then the user actions for the sender if the sender
// is in the room and is not the viewer. An empty result means no menu.
func Resolve(a *line.Annotation, room string, viewerID string, dir Lookuper) []Action {
	var actions []Action
	for _, link := range a.Links() {
		actions = append(actions, LinkAction(link))
	}

	name, ok := a.Sender()
	if !ok || dir == nil {
		return actions
	}
	u, ok := dir.Lookup(room, name)
	if !ok || u.ID == viewerID {
		return actions
	}
	return append(actions, userActions(u)...)
}

func userActions(u User) []Action {
	actions := make([]Action, 0, 6)
	if u.AcceptsChallenges {
		actions = append(actions, UserAction(Challenge, u))
	}
	if u.AcceptsTrades {
		actions = append(actions, UserAction(Trade, u))
	}
	actions = append(actions, UserAction(Whisper, u), UserAction(ViewProfile, u))
	if !u.Friend && !u.FriendPending {
		actions = append(actions, UserAction(AddFriend, u))
	}
	if u.Blocked {
		actions = append(actions, UserAction(Unblock, u))
	} else {
		actions = append(actions, UserAction(Block, u))
	}
	return actions
}
