// Package normalization maps loosely written option values, such as
// environment variables, to typed values.
package normalization

import "strings"

// Normalizer resolves case and whitespace insensitive keys to values of T.
type Normalizer[T any] struct {
	values map[string]T
}

// New creates a normalizer for values.
func New[T any](values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{values: make(map[string]T, len(values))}
	for k, v := range values {
		n.values[clean(k)] = v
	}
	return n
}

// Lookup returns the value for raw and whether raw is known.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
