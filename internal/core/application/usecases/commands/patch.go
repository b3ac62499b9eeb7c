package commands

// Patch carries an optional command field and remembers whether the caller
// supplied it. A zero Patch means "leave unchanged", which keeps a supplied
// zero value (empty string, zero length) distinguishable from an omitted one.
type Patch[T any] struct {
	value T
	set   bool
}

// PatchOf wraps a supplied value.
func PatchOf[T any](value T) Patch[T] {
	return Patch[T]{value: value, set: true}
}

// IsSet reports whether the caller supplied the field.
func (p Patch[T]) IsSet() bool {
	return p.set
}

// Value returns the supplied value. Meaningful only when IsSet is true.
func (p Patch[T]) Value() T {
	return p.value
}
