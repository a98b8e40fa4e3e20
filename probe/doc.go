// Package probe runs many bounded convergence measurements concurrently.
//
// It combines:
//   - errgroup for probe execution, cancellation, and parallelism limits
//   - an internal actor-style manager loop for completion-order findings
//
// Core behavior:
//   - submit measurements with Probe
//   - consume findings in completion order via Next(ctx)
//   - stop new submissions with Close
//   - wait for completion with Wait
//
// Semantics:
//   - Next(ctx) returns (f, true, nil) for one finished probe
//   - Next(ctx) returns (zero, false, nil) only after Close and full drain
//   - Next(ctx) returns (zero, false, ctx.Err()) if the caller context ends
//   - Wait returns the first observed probe error, then context cause, then nil
//
// Policy options:
//   - WithFailFast(true): cancel the group on the first probe error
//   - WithFailFast(false): keep remaining probes running (default)
//   - WithPanicToError(true): convert a probe panic to its error (default)
//   - WithPanicToError(false): let the panic propagate
//
// Each probe walks one lazy pipeline pull by pull on its own goroutine.
// Pipelines never share state, so sequential demand-driven evaluation holds
// inside every probe; only whole measurements run in parallel.
package probe
