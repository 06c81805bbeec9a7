package set

import (
	"reflect"
	"testing"
)

type testItem struct {
	key   string
	value interface{}
}

func (i testItem) Key() string        { return i.key }
func (i testItem) Value() interface{} { return i.value }

func named(name string) Item {
	return testItem{name, name}
}

func TestSetCaseInsensitive(t *testing.T) {
	s := New()
	if _, err := s.Get("foo"); err != ErrMissing {
		t.Errorf("matched before set: %v", err)
	}

	if err := s.Add(named("Foo")); err != nil {
		t.Fatalf("failed to add foo: %s", err)
	}
	if _, err := s.Get("foo"); err != nil {
		t.Errorf("not matched after set: %s", err)
	}
	if s.Len() != 1 {
		t.Error("not len 1 after set")
	}

	s.Add(named("FOO"))
	if s.Len() != 1 {
		t.Errorf("case variant added a second item: %d", s.Len())
	}

	if err := s.Remove("fOO"); err != nil {
		t.Errorf("failed to remove: %s", err)
	}
	if err := s.Remove("foo"); err != ErrMissing {
		t.Errorf("expected missing, got: %v", err)
	}
}

func TestSetExact(t *testing.T) {
	s := NewWith(nil)
	s.Add(named("Alice"))

	if _, err := s.Get("alice"); err != ErrMissing {
		t.Error("exact set matched a different case")
	}
	item, err := s.Get("Alice")
	if err != nil {
		t.Fatal(err)
	}
	if item.Value().(string) != "Alice" {
		t.Errorf("Got: %v; Expected: Alice", item.Value())
	}
}

func TestSetReplace(t *testing.T) {
	s := NewWith(nil)
	if err := s.Add(testItem{"a", nil}); err != ErrNil {
		t.Errorf("expected ErrNil, got: %v", err)
	}

	s.Add(testItem{"a", 1})
	s.Add(testItem{"a", 2})
	item, err := s.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if item.Value().(int) != 2 {
		t.Errorf("Add did not replace: %v", item.Value())
	}

	if n := s.Clear(); n != 1 {
		t.Errorf("Clear removed %d; Expected: 1", n)
	}
	if s.Len() != 0 {
		t.Error("not empty after clear")
	}
}

func TestSetListPrefix(t *testing.T) {
	s := New()
	for _, name := range []string{"bob", "Alice", "alfred", "carol"} {
		s.Add(named(name))
	}

	var actual []string
	for _, item := range s.ListPrefix("AL") {
		actual = append(actual, item.Key())
	}
	expected := []string{"alfred", "Alice"}
	if !reflect.DeepEqual(actual, expected) {
		t.Errorf("Got: %v; Expected: %v", actual, expected)
	}
}
