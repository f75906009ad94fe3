// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package search

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

var log = logrus.WithField("process", "search")

// ErrNotMonotonic is returned by VerifyMonotonic when a predicate turns true
// again after having been false.
var ErrNotMonotonic = errors.New("predicate is not monotonic")

// Number is the domain Range can search over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Range returns the largest x in [low, high) for which pred(x) is true. The
// second return value is false if pred is false on the whole range.
//
// pred must hold on a prefix [low, t) of the range and fail on [t, high). A
// predicate breaking that rule still lets Range terminate, but the answer is
// unspecified.
//
// Successors are computed by adding one, so for floating point domains the
// values tried on the true side are low, low+1, ... and the magnitudes
// involved must stay below 2^53.
func Range[T Number](low, high T, pred func(T) bool) (T, bool) {
	var ans T
	found := false

	for low < high {
		middle := midpoint(low, high)

		if pred(middle) {
			ans, found = middle, true
			low = middle + 1
		} else {
			high = middle
		}
	}

	return ans, found
}

// midpoint returns a value of [low, high) about halfway between the bounds,
// low < high, without overflowing T. Integers round down.
func midpoint[T Number](low, high T) T {
	if T(1)/2 == 0 {
		// high-low fits in 64 unsigned bits for every integer T, and the
		// conversions wrap back to the exact value.
		return low + T((uint64(high)-uint64(low))/2)
	}

	middle := low/2 + high/2
	if middle < low || middle >= high {
		return low
	}
	return middle
}

// Sqrt returns the floor of the square root of v.
func Sqrt(v uint64) uint64 {
	// floor(sqrt(MaxUint64)) fits in 32 bits
	high := v
	if high > math.MaxUint32 {
		high = math.MaxUint32
	}

	// x*x <= v, without overflowing
	r, ok := Range[uint64](0, high+1, func(x uint64) bool {
		return x == 0 || x <= v/x
	})
	if !ok {
		log.WithField("value", v).Panic("square root search returned no candidate")
	}

	return r
}

// VerifyMonotonic walks [low, high) once and checks that pred is true on a
// prefix and false afterwards. It is meant for tests and debugging, since it
// costs one predicate call per value.
func VerifyMonotonic[T constraints.Integer](low, high T, pred func(T) bool) error {
	var falseAt T
	seenFalse := false

	for x := low; x < high; x++ {
		if !pred(x) {
			if !seenFalse {
				falseAt, seenFalse = x, true
			}
			continue
		}

		if seenFalse {
			return errors.Wrapf(ErrNotMonotonic, "true at %v after false at %v", x, falseAt)
		}
	}

	return nil
}
