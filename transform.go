package convertly

// Transform converts each element of batch in order, one Optional per input.
func Transform[S, T any](batch []S, fn Func[S, T]) []Optional[T] {
	ret := make([]Optional[T], len(batch))
	for i, src := range batch {
		ret[i] = Convert(src, fn)
	}
	return ret
}

// TransformOr converts each element of batch in order, substituting fallback
// for elements that fail to convert; a failed element never aborts the batch.
func TransformOr[S, T any](batch []S, fn Func[S, T], fallback T) []T {
	ret := make([]T, len(batch))
	for i, src := range batch {
		ret[i] = Convert(src, fn).ValueOr(fallback)
	}
	return ret
}

// TransformInto appends converted values to dst with the raising extraction
// policy: the first failed element panics with ErrNoValue, leaving the
// already converted prefix in dst.
func TransformInto[S, T any](dst *[]T, batch []S, fn Func[S, T]) {
	for _, src := range batch {
		*dst = append(*dst, Convert(src, fn).Value())
	}
}
