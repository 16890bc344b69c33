package bitset

// Default strategies for engines that have no cheaper way to answer a
// query. They only rely on the rest of the contract.

// Superset clones a, unions it with b and compares cardinalities.
func Superset[S BitSet[S]](a, b S) bool {
	n := a.Len()
	c := a.Clone()
	c.Union(b)
	return c.Len() == n
}

// UnionChanged unions b into a and reports whether a's cardinality changed.
func UnionChanged[S BitSet[S]](a, b S) bool {
	n := a.Len()
	a.Union(b)
	return a.Len() != n
}

// IntersectChanged intersects a with b and reports whether a's cardinality changed.
func IntersectChanged[S BitSet[S]](a, b S) bool {
	n := a.Len()
	a.Intersect(b)
	return a.Len() != n
}

// SubtractChanged subtracts b from a and reports whether a's cardinality changed.
func SubtractChanged[S BitSet[S]](a, b S) bool {
	n := a.Len()
	a.Subtract(b)
	return a.Len() != n
}

// SubtractViaInvert computes a = a AND NOT b as a ∩ ¬b on a clone of b.
func SubtractViaInvert[S BitSet[S]](a, b S) {
	c := b.Clone()
	c.Invert()
	a.Intersect(c)
}

// Collect returns the indices of s in ascending order.
func Collect[S BitSet[S]](s S) []int {
	out := make([]int, 0, s.Len())
	for i := range s.Iter() {
		out = append(out, i)
	}
	return out
}
