package set

// Item is an entry storeable in a Set.
type Item interface {
	Key() string
	Value() interface{}
}
