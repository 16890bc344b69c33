//go:build !indexicaldebug

package simdset

// debugChecks enables bounds assertions on element access.
// Build with -tags indexicaldebug to turn them on.
const debugChecks = false
