// Package pi approximates π with the Gregory-Leibniz and Nilakantha series
// and measures how many terms each needs to reach a target precision.
//
// A Series bundles a lazy term source with an accumulation rule. Its partial
// sums form a rivulet pipeline, so convergence questions reduce to Detect:
// the returned index is the minimal number of terms for which the truncated
// partial sum matches the truncated target, and the index before it misses.
//
// All arithmetic is 64-bit IEEE floating point, accumulated term by term in
// series order. Precision comparison truncates rather than rounds: a partial
// sum reaches a target only when its leading digits match exactly after the
// rest are discarded, so a value a hair under the digit boundary still
// counts as a miss.
package pi

import (
	"iter"
	"math"

	"rivulet"
)

// Odds yields start, start+2, start+4, ... without end.
func Odds(start float64) iter.Seq[float64] {
	return rivulet.Iterate(start, func(v float64) float64 { return v + 2 })
}

// Series is a convergent series: a lazy term source, the value accumulation
// starts from, and the rule folding one term into the running sum.
type Series struct {
	Terms   iter.Seq[float64]
	Init    float64
	Combine func(term, acc float64) float64
}

// Partials returns the lazy sequence of partial sums, one per term. Like
// every rivulet sequence it is restartable and advances only on demand.
func (s Series) Partials() iter.Seq[float64] {
	return rivulet.Scan(s.Terms, s.Init, s.Combine)
}

// Sum accumulates the first n terms and returns the final value. Sum(n)
// equals the nth element of Partials; n <= 0 returns the initial value.
func (s Series) Sum(n int) float64 {
	return rivulet.Reduce(rivulet.Take(s.Terms, n), s.Init, s.Combine)
}

// Leibniz returns the Gregory-Leibniz series for π:
//
//	4/1 - 4/3 + 4/5 - 4/7 + ...
//
// Terms are the odd numbers from 1. Each contributes 4/term, subtracted when
// (term+1) mod 4 == 0 and added otherwise. Convergence is slow: five stable
// decimal digits take 136121 terms.
func Leibniz() Series {
	return Series{
		Terms: Odds(1),
		Init:  0,
		Combine: func(term, acc float64) float64 {
			if math.Mod(term+1, 4) == 0 {
				return acc - 4/term
			}
			return acc + 4/term
		},
	}
}

// Nilakantha returns the Nilakantha series for π:
//
//	3 + 4/(2·3·4) - 4/(4·5·6) + 4/(6·7·8) - ...
//
// Terms are the odd numbers from 3. Each contributes 4 over the product of
// the three consecutive integers centered on the term, added when
// (term+1) mod 4 == 0 and subtracted otherwise. Five stable decimal digits
// take 33 terms.
func Nilakantha() Series {
	return Series{
		Terms: Odds(3),
		Init:  3,
		Combine: func(term, acc float64) float64 {
			d := (term - 1) * term * (term + 1)
			if math.Mod(term+1, 4) == 0 {
				return acc + 4/d
			}
			return acc - 4/d
		},
	}
}

// Truncate discards the digits of x past the given decimal place, flooring
// toward negative infinity: Truncate(3.14159265, 5) is 3.14159. Truncation
// never rounds, so 3.1415999 truncated to four places is 3.1415, not 3.1416.
func Truncate(x float64, digits int) float64 {
	scale := math.Pow10(digits)
	return math.Floor(x*scale) / scale
}

// Until builds the predicate a Detect over Partials runs on: it holds while
// x truncated to the given digits differs from target truncated the same
// way, and breaks at the first value whose leading digits match.
func Until(target float64, digits int) func(float64) bool {
	want := Truncate(target, digits)
	return func(x float64) bool {
		return Truncate(x, digits) != want
	}
}
