package xslices

// Transform returns f applied to every element of in.
func Transform[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}

	return out
}
