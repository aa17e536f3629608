// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for grid construction and the
// cofactor engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy (validateNaNInf) applies to grids created with the options;
//     grids derived by kernels inherit the policy of their first operand.
//   - Parallel policy (workers, parallelThreshold) applies only to the
//     cofactor-matrix fan-out. Results never depend on it.
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by AllCloseDefault.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// Parallel policy for the cofactor-matrix fan-out.
const (
	// DefaultWorkers is the worker-pool bound; 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0

	// DefaultParallelThreshold is the smallest order n whose n×n cofactor matrix
	// is computed by the worker pool. Below it cells are computed inline (i→j),
	// where goroutine overhead dominates the (n-1)! work per cell.
	DefaultParallelThreshold = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid   = "matrix: WithWorkers: n must be >= 1"
	panicThresholdInvalid = "matrix: WithParallelThreshold: n must be >= 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Its fields are unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// parallel policy
	workers           int  // >= 1 after finalize; DefaultWorkers resolves to GOMAXPROCS
	parallelThreshold int  // >= 0; DefaultParallelThreshold
	sequential        bool // true disables the fan-out regardless of size
}

// Epsilon returns the resolved comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether new grids reject NaN/±Inf on Set.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Workers returns the resolved worker-pool bound (always >= 1).
func (o Options) Workers() int { return o.workers }

// ParallelThreshold returns the smallest order computed by the worker pool.
func (o Options) ParallelThreshold() int { return o.parallelThreshold }

// Sequential reports whether the fan-out is disabled.
func (o Options) Sequential() bool { return o.sequential }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by AllCloseDefault.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Never affects singularity detection: the inverse tests det == 0 exactly.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set and the From-constructors reject NaN and ±Inf with ErrNaNInf.
// Integer grids are unaffected (integers are always finite).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Notes:
//   - This flag propagates only on creation; existing grids are unaffected.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers bounds the cofactor-matrix worker pool to n goroutines.
// Implementation:
//   - Stage 1: validate n ≥ 1 (panic otherwise).
//   - Stage 2: return a setter; clears any previous WithSequential.
//
// Behavior highlights:
//   - n == 1 keeps the pool path but runs one cell at a time; use
//     WithSequential to skip goroutines entirely.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - The cofactor cells are CPU-bound; more workers than GOMAXPROCS buys nothing.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = n
		o.sequential = false
	}
}

// WithParallelThreshold sets the smallest order n that uses the worker pool.
// n == 0 sends every non-empty matrix through the pool (useful in tests).
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithSequential disables the cofactor fan-out: cells are computed inline in i→j order.
func WithSequential() Option {
	return func(o *Options) { o.sequential = true }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaults (single source of truth).
//   - Stage 2: apply opts in order; last-writer-wins semantics.
//   - Stage 3: finalize derived values and return.
//
// Determinism:
//   - Stable for a given sequence of opts (and a given GOMAXPROCS).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults and
// finalizes derived invariants. This is the canonical internal entry used by
// constructors and kernels.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:               DefaultEpsilon,
		validateNaNInf:    DefaultValidateNaNInf,
		workers:           DefaultWorkers,
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place.
// MUST be called after applying all Option setters.
func finalizeOptions(o *Options) {
	// Workers==0 means "use the scheduler's parallelism".
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.workers < 1 {
		o.workers = 1
	}
}

// useParallel reports whether an n×n cofactor matrix goes through the worker pool.
func (o Options) useParallel(n int) bool {
	return !o.sequential && n > 0 && n >= o.parallelThreshold
}
