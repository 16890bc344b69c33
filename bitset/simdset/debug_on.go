//go:build indexicaldebug

package simdset

const debugChecks = true
