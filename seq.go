package rivulet

import "iter"

// Iterate returns the infinite sequence seed, step(seed), step(step(seed)), ...
//
// The result is a pure description: no element exists until a consumer asks
// for it, and ranging the sequence again replays it from seed. Consuming n
// elements invokes step exactly n-1 times; the element after the last one
// consumed is never computed.
func Iterate[T any](seed T, step func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; ; v = step(v) {
			if !yield(v) {
				return
			}
		}
	}
}

// Take bounds seq to its first n elements. The source is never advanced past
// the nth element, so Take makes infinite sequences safe to materialize.
// n <= 0 yields nothing and does not touch the source.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range seq {
			if !yield(v) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}

// TakeWhile yields the leading elements of seq for which keep returns true
// and stops at the first element for which it does not. The rejected element
// is not yielded, and nothing beyond it is evaluated.
func TakeWhile[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !keep(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Map transforms each element of seq with fn. fn is applied on demand, once
// per consumed element.
func Map[T, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter yields only the elements of seq for which keep returns true. The
// source advances until enough passing elements have been produced, so a
// filter that rejects everything on an infinite sequence does not return.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !keep(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Collect materializes seq into a slice. Collect does not return on an
// infinite sequence; bound it with Take first.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
