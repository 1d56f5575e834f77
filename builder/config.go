// Package builder provides internal configuration types and functional
// options for hyperedge topology constructors. It centralizes common
// settings such as random number generator, vertex/hyperedge ID schemes, and
// weight distribution to keep constructor implementations DRY and
// consistent.
//
// The key type is BuilderOption, a function that mutates a builderConfig.
// builderConfig holds five fields:
//   - rng:          *rand.Rand source for randomness (nil → deterministic).
//   - idFn:         IDFn producing vertex IDs from integer indices.
//   - edgeIDFn:     IDFn producing hyperedge IDs from integer indices.
//   - weightFn:     WeightFn producing a hyperedge's numeric weight given an RNG.
//   - requiresRand: true when weightFn is stochastic and therefore needs rng
//     to be non-nil; constructors check this before running.
//
// Use newBuilderConfig to obtain a config with sensible defaults, then apply
// any number of BuilderOption in order. Later options override earlier ones.
package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a hyperedge topology constructor.
// It mutates the builderConfig before construction begins.
//
// Option constructors validate and panic on meaningless inputs (nil
// functions); construction itself never panics.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the configurable parameters for topology constructors.
//
// builderConfig is not safe for concurrent mutation; each builder invocation
// should create its own config via newBuilderConfig.
type builderConfig struct {
	rng          *rand.Rand // optional RNG; nil means deterministic behavior
	idFn         IDFn       // vertex index → vertex ID
	edgeIDFn     IDFn       // hyperedge index → hyperedge ID
	weightFn     WeightFn   // rng → hyperedge weight
	requiresRand bool       // weightFn needs a non-nil rng to behave as documented
}

// newBuilderConfig returns a builderConfig initialized with defaults, then
// applies each provided BuilderOption in order. If opts is empty, returns
// defaults: nil RNG, DefaultIDFn for vertex IDs, SymbolNumberIDFn("e") for
// hyperedge IDs ("e0", "e1", ...), DefaultWeightFn.
func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:      nil,
		idFn:     DefaultIDFn,
		edgeIDFn: SymbolNumberIDFn("e"),
		weightFn: DefaultWeightFn,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithIDScheme injects a custom IDFn for vertex IDs into the builderConfig.
// Panics, wrapping ErrOptionViolation, if idFn is nil.
func WithIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic(fmt.Errorf("builder: WithIDScheme(nil): %w", ErrOptionViolation))
	}

	return func(cfg *builderConfig) {
		cfg.idFn = idFn
	}
}

// WithEdgeIDScheme injects a custom IDFn for hyperedge IDs into the
// builderConfig. Panics, wrapping ErrOptionViolation, if idFn is nil.
func WithEdgeIDScheme(idFn IDFn) BuilderOption {
	if idFn == nil {
		panic(fmt.Errorf("builder: WithEdgeIDScheme(nil): %w", ErrOptionViolation))
	}

	return func(cfg *builderConfig) {
		cfg.edgeIDFn = idFn
	}
}

// WithWeightFn injects a custom WeightFn into the builderConfig. The
// function is assumed deterministic given its rng argument, so requiresRand
// is cleared; pair it with WithRand/WithSeed yourself if it needs one.
// Panics, wrapping ErrOptionViolation, if wfn is nil.
func WithWeightFn(wfn WeightFn) BuilderOption {
	if wfn == nil {
		panic(fmt.Errorf("builder: WithWeightFn(nil): %w", ErrOptionViolation))
	}

	return func(cfg *builderConfig) {
		cfg.weightFn = wfn
		cfg.requiresRand = false
	}
}

// WithRand sets an explicit *rand.Rand source for randomness.
// Panics, wrapping ErrOptionViolation, if rng is nil; use WithSeed for a
// freshly seeded source instead.
func WithRand(rng *rand.Rand) BuilderOption {
	if rng == nil {
		panic(fmt.Errorf("builder: WithRand(nil): %w", ErrOptionViolation))
	}

	return func(cfg *builderConfig) {
		cfg.rng = rng
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the RNG source. Use this for reproducible randomness.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// checkRand reports ErrNeedRandSource if cfg's weightFn is stochastic and no
// rng was supplied. Constructors call this before drawing any weight.
func (cfg builderConfig) checkRand(method string) error {
	if cfg.requiresRand && cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "weight function requires a non-nil rng (use WithRand or WithSeed)")
	}

	return nil
}
