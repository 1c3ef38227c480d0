package geom

// Pick cycles through seq: Pick(seq, i) == seq[i mod len(seq)] for any i,
// including negative ones. An empty sequence yields the zero value.
func Pick[T any](seq []T, i int) T {
	n := len(seq)
	if n == 0 {
		var zero T
		return zero
	}
	return seq[((i%n)+n)%n]
}
