// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package interval picks points out of a set of closed integer intervals so
// that consecutive points are as far apart as possible.
package interval

import (
	"math"

	"github.com/dusk-network/dusk-search/pkg/search"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "interval")

// MaxSpacing returns the largest spacing d such that count points, each inside
// one of the intervals, can be placed with consecutive points at least d
// apart. Spacings are searched in [1, capacity]. The second return value is
// false if the intervals hold fewer than count positions altogether, or if
// there are no intervals.
//
// Overlapping intervals are accepted, but a position shared between them
// hosts at most one point: placed points are strictly increasing. The result
// is therefore also absent when the union of the intervals holds fewer than
// count positions, even if the capacity does not.
//
// intervals is not modified.
func MaxSpacing(intervals []Interval, count int) (int, bool) {
	v := Intervals(intervals).Sorted()
	if len(v) == 0 {
		return 0, false
	}

	l := v.Capacity()
	if l < count {
		log.WithFields(logrus.Fields{
			"capacity": l,
			"count":    count,
		}).Debugln("not enough room for the requested points")
		return 0, false
	}

	// searching k = d-1 over [0, l) keeps l+1 out of the bounds
	feasible := v.feasible(count)
	k, found := search.Range(0, l, func(k int) bool {
		return feasible(k + 1)
	})
	if !found {
		return 0, false
	}
	d := k + 1

	log.WithFields(logrus.Fields{
		"capacity": l,
		"count":    count,
		"spacing":  d,
	}).Traceln("spacing selected")
	return d, found
}

// Feasibility returns the predicate MaxSpacing searches with: whether count
// points fit at a given spacing. It is true on a prefix of the spacings
// [1, capacity], which VerifyMonotonic can confirm on small inputs.
func Feasibility(intervals []Interval, count int) func(d int) bool {
	v := Intervals(intervals).Sorted()
	if len(v) == 0 {
		return func(int) bool { return false }
	}
	return v.feasible(count)
}

// Place returns the first count positions of the greedy placement at spacing
// d, or nil if they do not fit.
func Place(intervals []Interval, count, d int) []int {
	v := Intervals(intervals).Sorted()
	if len(v) == 0 || count <= 0 || d < 1 {
		return nil
	}

	positions := make([]int, 0, count)
	v.greedy(d, count, func(p int) {
		positions = append(positions, p)
	})

	if len(positions) < count {
		return nil
	}
	return positions
}

func (v Intervals) feasible(count int) func(d int) bool {
	return func(d int) bool {
		return v.greedy(d, count, nil) >= count
	}
}

// greedy places the first point on the start of the first interval and every
// following one on the lowest position at least d after it, stopping once
// limit points are placed. Placed points strictly increase, so a position
// shared by overlapping intervals is used at most once. v must be sorted and
// not empty, d must be positive.
func (v Intervals) greedy(d, limit int, visit func(int)) int {
	last := v[0].Start
	if visit != nil {
		visit(last)
	}

	n := 1
	for _, i := range v {
		for n < limit {
			if last > math.MaxInt-d {
				// nothing fits past math.MaxInt
				return n
			}

			next := last + d
			if next < i.Start {
				next = i.Start
			}

			if next > i.End {
				break
			}

			last = next
			n++
			if visit != nil {
				visit(last)
			}
		}
	}

	return n
}
