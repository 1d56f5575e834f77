// SPDX-License-Identifier: MIT
// Package: hyperdag/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using %w (see builderErrorf).
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (e.g., n) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic WeightFn (WithUniformWeight,
// WithNormalWeight, WithExponentialWeight) requires a non-nil *rand.Rand in
// the resolved builderConfig; constructors check this via
// builderConfig.checkRand before drawing any weight. Supply one via
// WithSeed/WithRand.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates that a WithX(...) option constructor received
// a meaningless or unsafe value (e.g., WithIDScheme(nil), WithRand(nil),
// ConstantWeightFn(-1)). Option constructors panic with this sentinel
// wrapped via %w rather than returning it, since they run at graph-building
// time rather than per-construction time.
// Usage: recover and errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates BuildHypergraph could not run a constructor
// (a nil Constructor). Errors from the underlying hypergraph, such as an ID
// collision, are not mapped to this sentinel: they keep the core error,
// wrapped with the constructor's context.
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry or report */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>",
// preserving err for errors.Is via %w.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
