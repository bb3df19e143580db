package refine

import "math/rand"

// DefaultMaxIterations is the shortcut attempt budget when not overridden.
const DefaultMaxIterations = 200

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Options configures Shortcut.
//
// MaxIterations – number of random splice attempts (must be positive to do
// any work; DefaultMaxIterations when built via DefaultOptions).
// Seed          – RNG seed; 0 selects the fixed default seed.
// Rand          – explicit RNG; overrides Seed when non-nil. Not
// goroutine-safe; do not share one *rand.Rand across goroutines.
type Options struct {
	MaxIterations int
	Seed          int64
	Rand          *rand.Rand
}

// Option represents a functional option for configuring Shortcut.
type Option func(*Options)

// WithMaxIterations sets the shortcut attempt budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithSeed derives the RNG deterministically from seed.
// Policy: seed==0 ⇒ the fixed default seed; otherwise used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects an explicit RNG, overriding any seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = rng
	}
}

// DefaultOptions returns the shortcut defaults: 200 iterations, the fixed
// default RNG stream.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Seed:          0,
		Rand:          nil,
	}
}

// rng resolves the generator for one Shortcut run.
// Complexity: O(1).
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	s := o.Seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
