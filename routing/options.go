package routing

import "math"

// Options configures BuildTable and BuildFirstHopTable.
type Options struct {
	C1, C2    float64
	Selector  Selector
	FullTable bool
}

// Option mutates an Options value, following the functional-options
// pattern.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		C1:        math.Inf(1),
		C2:        math.Inf(1),
		Selector:  BudgetedMiddle,
		FullTable: true,
	}
}

// WithCaps sets the resource caps (C1, C2). It panics if either is
// negative.
func WithCaps(c1, c2 float64) Option {
	if c1 < 0 || c2 < 0 {
		panic(ErrNegativeCap)
	}
	return func(o *Options) { o.C1, o.C2 = c1, c2 }
}

// WithSelector overrides the representative-solution strategy. The
// default is BudgetedMiddle.
func WithSelector(sel Selector) Option {
	return func(o *Options) { o.Selector = sel }
}

// WithFullTable toggles whether the builder runs Stage 2/3 (possible
// senders and their forwarding behavior) on top of Stage 1, or
// produces a first-hop-only table. BuildTable defaults this to true;
// BuildFirstHopTable defaults it to false. An explicit WithFullTable
// always wins over either default.
func WithFullTable(full bool) Option {
	return func(o *Options) { o.FullTable = full }
}
