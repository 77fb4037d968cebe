package schema

import (
	"fmt"
	"math"

	"github.com/aretw0/roentgen/pkg/domain"
)

// Range is an inclusive [min, max] pair.
type Range [2]float64

// Between returns the inclusive range [lo, hi].
func Between(lo, hi float64) Range { return Range{lo, hi} }

// AtLeast returns the range [lo, +Inf].
func AtLeast(lo float64) Range { return Range{lo, math.Inf(1)} }

// AtMost returns the range [-Inf, hi].
func AtMost(hi float64) Range { return Range{math.Inf(-1), hi} }

// Exactly returns the range [n, n].
func Exactly(n float64) Range { return Range{n, n} }

// Unbounded returns the range [-Inf, +Inf].
func Unbounded() Range { return Range{math.Inf(-1), math.Inf(1)} }

// Min returns the lower bound.
func (r Range) Min() float64 { return r[0] }

// Max returns the upper bound.
func (r Range) Max() float64 { return r[1] }

// Contains reports whether min <= n <= max. NaN is never contained.
func (r Range) Contains(n float64) bool {
	return n >= r[0] && n <= r[1]
}

func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r[0], r[1])
}

func (r Range) validate() error {
	if math.IsNaN(r[0]) || math.IsNaN(r[1]) {
		return domain.Invalid("range %s has a NaN bound", r)
	}
	if r[0] > r[1] {
		return domain.Invalid("range %s has min greater than max", r)
	}
	return nil
}

// ResolveRanges applies the plural-over-singular rule shared by every
// range-constrained validator: many wins when non-empty, then single, and
// with neither the result is the unbounded range. Every returned pair is
// checked for min <= max.
func ResolveRanges(single *Range, many []Range) ([]Range, error) {
	var out []Range
	switch {
	case len(many) > 0:
		out = append(out, many...)
	case single != nil:
		out = []Range{*single}
	default:
		return []Range{Unbounded()}, nil
	}

	for _, r := range out {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AnyContains reports whether at least one range contains n.
func AnyContains(ranges []Range, n float64) bool {
	for _, r := range ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}
