package rivulet

import "iter"

// Point is a detected element: its value and the 1-based position at which
// the sequence produced it. For a scanned pipeline the index equals the
// number of source terms consumed to reach the value.
type Point[T any] struct {
	Index int
	Value T
}

// Detect consumes seq in order while the predicate returns true and returns
// the first element for which it returns false, with its 1-based position.
//
// The index boundary is exact: a detection at index n means consuming n
// elements reaches the first breaking value and consuming n-1 does not.
// Nothing past the detected element is evaluated, and the predicate runs
// exactly once per inspected element.
//
// If seq ends before the predicate breaks, Detect returns a zero Point and
// false; an empty sequence reports the same. A predicate that never breaks
// over an infinite sequence does not return; use DetectWithin to bound the
// search.
func Detect[T any](seq iter.Seq[T], while func(T) bool) (Point[T], bool) {
	i := 0
	for v := range seq {
		i++
		if !while(v) {
			return Point[T]{Index: i, Value: v}, true
		}
	}
	return Point[T]{}, false
}

// DetectWithin is Detect with an inspection budget: at most limit elements
// are consumed. It returns a zero Point and false when the budget is spent
// without the predicate breaking. limit <= 0 inspects nothing.
func DetectWithin[T any](seq iter.Seq[T], while func(T) bool, limit int) (Point[T], bool) {
	if limit <= 0 {
		return Point[T]{}, false
	}
	return Detect(Take(seq, limit), while)
}
