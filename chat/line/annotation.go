package line

import (
	"fmt"
	"strings"
)

// Annotation is the parse result for one chat line: who sent it and which
// links it carries. Annotations are never modified once created.
type Annotation struct {
	sender string
	links  []string
}

// NewAnnotation builds an Annotation. An empty sender means no sender.
func NewAnnotation(sender string, links ...string) *Annotation {
	a := &Annotation{sender: sender}
	if len(links) > 0 {
		a.links = append([]string(nil), links...)
	}
	return a
}

// Sender returns the sender name and whether the line had one.
func (a *Annotation) Sender() (string, bool) {
	if a == nil || a.sender == "" {
		return "", false
	}
	return a.sender, true
}

// Links returns a copy of the extracted links in the order they appear.
func (a *Annotation) Links() []string {
	if a == nil || len(a.links) == 0 {
		return nil
	}
	return append([]string(nil), a.links...)
}

// NumLinks returns how many links the line carries.
func (a *Annotation) NumLinks() int {
	if a == nil {
		return 0
	}
	return len(a.links)
}

// Interactive reports whether the line offers anything to click on.
func (a *Annotation) Interactive() bool {
	return a != nil && (a.sender != "" || len(a.links) > 0)
}

func (a *Annotation) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("sender=%q links=[%s]", a.sender, strings.Join(a.links, " "))
}
