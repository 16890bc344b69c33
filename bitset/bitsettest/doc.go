// Package bitsettest provides the behavioural test suite shared by every
// bitset.BitSet engine.
//
//	func TestContract(t *testing.T) {
//		bitsettest.Run(t, roaringset.New)
//	}
package bitsettest
