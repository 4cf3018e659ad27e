package convertly

import "errors"

// ErrNoValue is the panic payload of Value when no value is present.
var ErrNoValue = errors.New("optional has no value")

// Optional holds either a converted value or nothing. The zero value is empty.
type Optional[T any] struct {
	value T
	has   bool
}

// Some returns an Optional holding value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, has: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Has reports whether a value is present.
func (o Optional[T]) Has() bool {
	return o.has
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.has
}

// Value returns the held value; it panics with ErrNoValue when empty.
func (o Optional[T]) Value() T {
	if !o.has {
		panic(ErrNoValue)
	}
	return o.value
}

// ValueOr returns the held value if present, otherwise fallback.
func (o Optional[T]) ValueOr(fallback T) T {
	if !o.has {
		return fallback
	}
	return o.value
}
