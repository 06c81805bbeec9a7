package chat

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(&buf)
	defer SetLogger(nil)

	s := NewSession()
	s.OnRoomLeft("nowhere")
	s.OnRenderLine("general-log", 1, "Alice: hi", "general", "me")
	s.OnLogDiscarded("general-log")

	out := buf.String()
	for _, expected := range []string{
		`[chat] Left unknown room "nowhere"`,
		`[chat/line] Dropped 1 annotations for log "general-log"`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Got: %q; Expected to contain: %q", out, expected)
		}
	}

	SetLogger(nil)
	buf.Reset()
	s.OnRoomLeft("nowhere")
	if buf.Len() != 0 {
		t.Errorf("Got: %q; Expected silence", buf.String())
	}
}
