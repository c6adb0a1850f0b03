package randword

import "math/rand"

type options struct {
	rng *rand.Rand
}

// Option configures the Gen* functions.
//
// Today options only exist to inject a deterministic random source; the
// default is the package-level math/rand source.
type Option func(*options)

// WithRand draws from r instead of the shared package source. Useful for
// reproducible selections in tests.
//
// If nil is passed, the shared source is used.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) intn(n int) int {
	if o.rng != nil {
		return o.rng.Intn(n)
	}
	return rand.Intn(n) // nolint gosec
}
