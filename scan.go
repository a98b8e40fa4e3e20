package rivulet

import "iter"

// Scan folds seq from the left with combine and yields every intermediate
// accumulator: output i is combine(element i, output i-1), with init standing
// in before the first element. init itself is not yielded, so an empty source
// scans to an empty sequence and n inputs produce exactly n outputs.
//
// Scan is the lazy counterpart of Reduce: the accumulation advances only as
// far as the consumer reads, which makes running states over infinite
// sequences observable. combine is invoked exactly once per consumed output.
func Scan[T, A any](seq iter.Seq[T], init A, combine func(term T, acc A) A) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := init
		for t := range seq {
			acc = combine(t, acc)
			if !yield(acc) {
				return
			}
		}
	}
}

// Reduce folds seq from the left with combine and returns only the final
// accumulator. Reduce consumes the entire sequence, so infinite input must
// be bounded with Take first. Reducing an empty sequence returns init.
//
// Reduce(Take(seq, n), init, combine) equals the nth element of
// Scan(seq, init, combine).
func Reduce[T, A any](seq iter.Seq[T], init A, combine func(term T, acc A) A) A {
	acc := init
	for t := range seq {
		acc = combine(t, acc)
	}
	return acc
}
