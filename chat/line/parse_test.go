package line

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		sender string
		links  []string
	}{
		{"Alice: check http://example.com/a(b) now", "Alice", []string{"http://example.com/a(b)"}},
		{"   ", "", nil},
		{"", "", nil},
		{"no delimiter here", "", nil},
		{": nobody", "", nil},
		{"<color=#ff0000>Bob</color>: hello", "Bob", nil},
		{"<b></b>: hello", "", nil},
		{"  Carol  : padded", "Carol", nil},
		{`Odd\:Name: hi`, "Odd:Name", nil},
		{`back\slash: hi`, `back\slash`, nil},
		{"Dave: first: second", "Dave", nil},
		{
			"Eve: see www.example.com and https://golang.org/pkg/regexp/.",
			"Eve",
			[]string{"www.example.com", "https://golang.org/pkg/regexp/"},
		},
		{"Frank: example.org/path, then done", "Frank", []string{"example.org/path"}},
		{"Zed: visit http://a.io/x (and http://b.io/y)", "Zed", []string{"http://a.io/x", "http://b.io/y"}},
		{"visit http://a.io/x", "visit http", []string{"http://a.io/x"}},
		{"http://example.com/page: is the sender boundary", "http", []string{"http://example.com/page"}},
	}

	for _, test := range tests {
		a := Parse(test.input)
		sender, _ := a.Sender()
		if sender != test.sender {
			t.Errorf("%q: Got sender %q; Expected %q", test.input, sender, test.sender)
		}
		if !reflect.DeepEqual(a.Links(), test.links) {
			t.Errorf("%q: Got links %q; Expected %q", test.input, a.Links(), test.links)
		}
	}
}

func TestParseMalformedMarkup(t *testing.T) {
	// The boundary is chosen on raw text, so a ':' inside an unclosed tag
	// wins and the broken tag is left as-is.
	sender := ParseSender(`<a href="x:y">Bob</a>: hi`)
	if sender != `<a href="x` {
		t.Errorf("Got: %q", sender)
	}
}

func TestAnnotationEmpty(t *testing.T) {
	a := Parse("   ")
	if _, ok := a.Sender(); ok {
		t.Error("sender present for blank line")
	}
	if a.NumLinks() != 0 {
		t.Errorf("links present for blank line: %v", a.Links())
	}
	if a.Interactive() {
		t.Error("blank line is interactive")
	}

	var nilAnnotation *Annotation
	if nilAnnotation.Interactive() {
		t.Error("nil annotation is interactive")
	}
}

func TestAnnotationLinksCopy(t *testing.T) {
	a := NewAnnotation("Alice", "http://example.com/")
	links := a.Links()
	links[0] = "mutated"
	if a.Links()[0] != "http://example.com/" {
		t.Error("annotation mutated through Links()")
	}
}
