package voicing

// Options configures Solve, Compare and the individual solvers.
//
//   - Algorithm: strategy used by Solve (ignored by the direct solvers).
//   - MaxExhaustive: refuse exhaustive search for songs longer than this;
//     0 means unbounded. Must be ≥ 0.
//   - LiteralGreedyOpening: greedy opens with variant 0 even when it is
//     unplayable, instead of the first playable variant.
type Options struct {
	Algorithm            Algorithm
	MaxExhaustive        int
	LiteralGreedyOpening bool
}

// Option represents a functional option.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - Algorithm:            AlgoDynamic
//   - MaxExhaustive:        0 (unbounded)
//   - LiteralGreedyOpening: false (open on the first playable variant)
func DefaultOptions() Options {
	return Options{
		Algorithm:            AlgoDynamic,
		MaxExhaustive:        0,
		LiteralGreedyOpening: false,
	}
}

// WithAlgorithm selects the strategy used by Solve.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithMaxExhaustive bounds the song length accepted by exhaustive search.
// Panics on a negative bound; 0 disables the bound.
func WithMaxExhaustive(n int) Option {
	if n < 0 {
		panic("voicing: WithMaxExhaustive(n) requires n >= 0")
	}
	return func(o *Options) {
		o.MaxExhaustive = n
	}
}

// WithLiteralGreedyOpening makes greedy open on variant 0 unconditionally.
func WithLiteralGreedyOpening() Option {
	return func(o *Options) {
		o.LiteralGreedyOpening = true
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
