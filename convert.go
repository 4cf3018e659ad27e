package convertly

// Func is a single-direction conversion attempt exposed by a converter
// back-end. Requesting a source/target pair a back-end does not support
// means there is no method to take a Func from, a compile-time error.
type Func[S, T any] func(src S) (T, error)

// Convert runs one conversion attempt through fn. A reported failure becomes
// an empty Optional rather than an error; callers opt into raising via
// Optional.Value. Back-ends that panic on malformed input (see cast) are not
// intercepted: their panic propagates to the caller unmodified.
func Convert[S, T any](src S, fn Func[S, T]) Optional[T] {
	value, err := fn(src)
	if err != nil {
		return None[T]()
	}
	return Some(value)
}

// Converting returns the per-element form of Convert for batch pipelines.
func Converting[S, T any](fn Func[S, T]) func(S) Optional[T] {
	return func(src S) Optional[T] {
		return Convert(src, fn)
	}
}
