// Package rivulet provides lazy, demand-driven sequences built on iter.Seq.
//
// It combines:
//   - infinite generators built from a seed and a pure step function
//   - scanning accumulation that yields every intermediate accumulator state
//   - convergence detection that stops at the first predicate break
//
// Core behavior:
//   - build unbounded sequences with Iterate
//   - bound them with Take and TakeWhile, reshape them with Map and Filter
//   - expose running accumulations with Scan, final values with Reduce
//   - locate the first element breaking a predicate with Detect and DetectWithin
//
// Semantics:
//   - sequences are value-semantics closures: ranging one twice replays it
//     from the seed, and equal seeds with equal step functions yield equal
//     elements at every position
//   - evaluation is demand-driven end to end: consuming n elements of any
//     pipeline invokes the seed's step function exactly n-1 times, and
//     nothing past the last consumed element is ever computed
//   - Detect reports 1-based positions: a detection at index n means the
//     predicate holds for the first n-1 elements and breaks at the nth
//
// Evaluation model:
//   - single-threaded, synchronous pull; a Detect over Scan over Iterate
//     advances the whole pipeline one element at a time
//   - a predicate that never breaks over an infinite sequence does not
//     return; bound the search with DetectWithin
//
// The pi subpackage applies the pipeline to convergent series for π, and the
// probe subpackage runs many bounded detections concurrently.
package rivulet
