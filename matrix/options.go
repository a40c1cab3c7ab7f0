// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps is consumed by the tolerant predicates (IsHermitian, IsUnitary).
//   - allowUndefined is consumed by NewDense and propagates to Set.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultAllowUndefined toggles acceptance of cplx.NaN in Set.
	// INF is always accepted: it is a legal point of the extended plane.
	DefaultAllowUndefined = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	allowUndefined bool    // DefaultAllowUndefined
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps relaxes Hermitian/unitary checks; use judiciously.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAllowUndefined lets Set store cplx.NaN on matrices created with it.
// Kernels never validate their own results, so this only affects ingestion.
func WithAllowUndefined() Option {
	return func(o *Options) { o.allowUndefined = true }
}

// NewOptions resolves opts over the defaults.
// Exposed so that packages layered on matrix share one tolerance policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// AllowUndefined reports whether NaN elements are accepted by Set.
func (o Options) AllowUndefined() bool { return o.allowUndefined }

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		allowUndefined: DefaultAllowUndefined,
	}
}

// gatherOptions applies user setters in order over the defaults.
// Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
