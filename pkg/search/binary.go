// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package search implements lookups over sorted slices and boundary searches
// over monotonic predicates.
package search

import "golang.org/x/exp/constraints"

// Binary returns the lowest index i such that s[i] == key. The second return
// value is false if key is not in s.
// s must be sorted in ascending order, otherwise the result is unspecified.
func Binary[T constraints.Ordered](s []T, key T) (int, bool) {
	return BinaryFunc(s, key, compare[T])
}

// BinaryFunc is like Binary but uses cmp to compare elements with key. cmp
// returns a negative number when the element sorts before key, zero when
// they match and a positive number otherwise.
func BinaryFunc[E, K any](s []E, key K, cmp func(E, K) int) (int, bool) {
	low, high := 0, len(s)

	idx, found := 0, false
	for low < high {
		middle := low + (high-low)/2

		switch c := cmp(s[middle], key); {
		case c == 0:
			// keep going left, there might be a lower duplicate
			idx, found = middle, true
			high = middle
		case c > 0:
			high = middle
		default:
			low = middle + 1
		}
	}

	return idx, found
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
