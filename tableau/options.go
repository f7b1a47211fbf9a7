// SPDX-License-Identifier: MIT

// Package tableau: functional configuration for Build.
// Defaults are documented constants; WithX constructors panic only on
// nonsensical values (programmer error).

package tableau

// Count bounds for variables and constraints.
const (
	// DefaultMinCount is the smallest accepted number of variables/constraints.
	DefaultMinCount = 1

	// DefaultMaxCount is the largest accepted number of variables/constraints.
	// The bound keeps tableaux small and readable; the engine itself has no
	// hard limit.
	DefaultMaxCount = 10
)

const panicCountBoundsInvalid = "tableau: WithCountBounds: need 1 <= min <= max"

// Option mutates build options.
type Option func(*Options)

// Options is the effective build configuration.
type Options struct {
	minCount int // DefaultMinCount
	maxCount int // DefaultMaxCount
}

// WithCountBounds sets the accepted range for both the variable count and
// the constraint count. Panics unless 1 <= min <= max.
func WithCountBounds(min, max int) Option {
	if min < 1 || max < min {
		panic(panicCountBoundsInvalid)
	}

	return func(o *Options) {
		o.minCount = min
		o.maxCount = max
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{minCount: DefaultMinCount, maxCount: DefaultMaxCount}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
