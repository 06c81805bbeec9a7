package chat

import (
	"io"
	stdlog "log"

	"github.com/scrolls-mods/chatlens/chat/line"
)

const logPrefix = "[chat] "

// logger reports roster anomalies: nameless users, leaving unknown rooms.
var logger *stdlog.Logger

// SetLogger sends the chat and chat/line logs to w. A nil w silences both.
func SetLogger(w io.Writer) {
	if w == nil {
		w = nullWriter{}
	}
	logger = stdlog.New(w, logPrefix, stdlog.Flags())
	line.SetLogger(w)
}

type nullWriter struct{}

func (nullWriter) Write(data []byte) (int, error) {
	return len(data), nil
}

func init() {
	SetLogger(nil)
}
