// Package pointer provides helpers for taking the address of values, which
// Go does not allow on literals and function results directly.
package pointer

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}
