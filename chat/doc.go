/*
`chat` package keeps what a chat window needs to know to turn a rendered line
into a context menu: who is in each room, and which actions a line offers to
the viewer.

This package should not know anything about drawing or input. The window it
serves reports room events and rendered lines through a Session, and performs
the chosen Action through a Performer.
*/

package chat
