package line

import (
	"io"
	stdlog "log"
)

// logger reports cache drops. Silent unless SetLogger is given a writer.
var logger = stdlog.New(nullWriter{}, "[chat/line] ", stdlog.Flags())

// SetLogger changes where cache logs go. A nil w silences them.
func SetLogger(w io.Writer) {
	if w == nil {
		w = nullWriter{}
	}
	logger.SetOutput(w)
}

type nullWriter struct{}

func (nullWriter) Write(data []byte) (int, error) {
	return len(data), nil
}
