// SPDX-License-Identifier: MIT

// Package grid: functional configuration for the spiral generator.
//
// Defaults are declared once as constants and mirrored by defaultOptions.
// WithX constructors only record values; validation happens in the
// operation that consumes them, which returns a sentinel error.

package grid

// Direction selects the turning direction of a spiral walk.
type Direction int

const (
	// Clockwise walks the top row left→right first.
	Clockwise Direction = iota

	// CounterClockwise walks the left column top→bottom first.
	CounterClockwise
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

// Defaults for Spiral.
const (
	// DefaultStart is the value written into the top-left cell.
	DefaultStart = 1

	// DefaultDirection is the turning direction of the walk.
	DefaultDirection = Clockwise
)

// Options holds the resolved Spiral configuration.
type Options struct {
	start     int
	direction Direction
}

// Option mutates Options.
type Option func(*Options)

// WithStart sets the first value of the spiral (default DefaultStart).
// Cells hold start, start+1, …, start+N²-1.
func WithStart(v int) Option {
	return func(o *Options) {
		o.start = v
	}
}

// WithDirection sets the turning direction (default DefaultDirection).
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.direction = d
	}
}

func defaultOptions() Options {
	return Options{
		start:     DefaultStart,
		direction: DefaultDirection,
	}
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
