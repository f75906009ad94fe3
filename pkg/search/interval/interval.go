// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package interval

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformed is returned by Validate for an interval ending before it starts.
var ErrMalformed = errors.New("interval ends before it starts")

// Interval is the closed range of integer positions [Start, End].
type Interval struct {
	Start int
	End   int
}

// Len is the number of positions in the interval, saturating at math.MaxInt.
// It is 0 for a malformed interval.
func (i Interval) Len() int {
	if i.End < i.Start {
		return 0
	}

	// the difference is exact in 64 bits even when it overflows int
	n := uint64(i.End) - uint64(i.Start)
	if n >= math.MaxInt {
		return math.MaxInt
	}
	return int(n) + 1
}

// Contains reports whether p lies in the interval.
func (i Interval) Contains(p int) bool {
	return i.Start <= p && p <= i.End
}

func (i Interval) String() string {
	var str strings.Builder
	str.WriteString("[")
	str.WriteString(strconv.Itoa(i.Start))
	str.WriteString(", ")
	str.WriteString(strconv.Itoa(i.End))
	str.WriteString("]")
	return str.String()
}

// Intervals is a collection of intervals ordered by Start, then End.
type Intervals []Interval

func (v Intervals) Len() int      { return len(v) }
func (v Intervals) Swap(i, j int) { v[i], v[j] = v[j], v[i] }
func (v Intervals) Less(i, j int) bool {
	if v[i].Start != v[j].Start {
		return v[i].Start < v[j].Start
	}
	return v[i].End < v[j].End
}

// Sort orders the collection in place.
func (v Intervals) Sort() {
	sort.Sort(v)
}

// Sorted returns an ordered copy, leaving v untouched.
func (v Intervals) Sorted() Intervals {
	c := make(Intervals, len(v))
	copy(c, v)
	sort.Sort(c)
	return c
}

// Capacity is the total number of positions over all intervals, saturating
// at math.MaxInt. Positions shared by overlapping intervals count once per
// interval.
func (v Intervals) Capacity() int {
	var l int
	for _, i := range v {
		n := i.Len()
		if l > math.MaxInt-n {
			return math.MaxInt
		}
		l += n
	}
	return l
}

// Validate returns an error naming the first malformed interval.
func (v Intervals) Validate() error {
	for idx, i := range v {
		if i.End < i.Start {
			return errors.Wrapf(ErrMalformed, "interval %d %s", idx, i)
		}
	}
	return nil
}
