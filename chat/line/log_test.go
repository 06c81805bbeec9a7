package line

import (
	"reflect"
	"testing"
)

func entryTexts(entries []Entry) []string {
	r := []string{}
	for _, e := range entries {
		r = append(r, e.Text)
	}
	return r
}

func TestLog(t *testing.T) {
	l := NewLog("general", 3)

	if r := entryTexts(l.Lines()); !reflect.DeepEqual(r, []string{}) {
		t.Errorf("Got: %v; Expected empty", r)
	}

	for _, s := range []string{"1", "2", "3", "4", "5"} {
		l.Append(s)
	}
	if l.Len() != 3 {
		t.Errorf("Wrong size: %v", l.Len())
	}

	expected := []string{"3", "4", "5"}
	if r := entryTexts(l.Lines()); !reflect.DeepEqual(r, expected) {
		t.Errorf("Got: %v; Expected: %v", r, expected)
	}
	expected = []string{"4", "5"}
	if r := entryTexts(l.Recent(2)); !reflect.DeepEqual(r, expected) {
		t.Errorf("Got: %v; Expected: %v", r, expected)
	}
}

func TestLogKeys(t *testing.T) {
	l := NewLog("general", 2)
	a := l.Append("same")
	b := l.Append("same")
	if a.Key == b.Key {
		t.Error("identical lines got the same key")
	}

	c := l.Append("third")
	if c.Key != 2 {
		t.Errorf("Got key %d; Expected: 2", c.Key)
	}
	if _, ok := l.Get(a.Key); ok {
		t.Error("evicted line still found")
	}
	if e, ok := l.Get(b.Key); !ok || e.Text != "same" {
		t.Errorf("Got: %v, %v", e, ok)
	}
}
