/*
Package maybe provides an option type.

A Maybe either carries a value ("just x") or carries nothing. We use it to
let APIs distinguish "no result present" from a present-but-empty result,
without resorting to pointer sentinels.
*/
package maybe

// Maybe is an optional value of type T.
// The zero value of Maybe is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is a predicate wether m carries no value.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Value returns the carried value, together with an indicator wether a
// value is present.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the carried value, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a carried value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a carried value; Nothing stays Nothing.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a partial computation onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
