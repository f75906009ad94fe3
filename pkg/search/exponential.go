// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package search

import "golang.org/x/exp/constraints"

// Exponential has the same contract as Binary. It first brackets key by
// comparing at indexes 1, 2, 4, 8... and then runs a binary search inside the
// bracket, which makes it cheaper than Binary when key sits near the front of
// a long slice.
func Exponential[T constraints.Ordered](s []T, key T) (int, bool) {
	return ExponentialFunc(s, key, compare[T])
}

// ExponentialFunc is like Exponential but uses cmp as BinaryFunc does.
func ExponentialFunc[E, K any](s []E, key K, cmp func(E, K) int) (int, bool) {
	// low is the last index known to hold an element below key, or 0 before
	// any such index is seen. The bracket starts at 0 until then, so a match
	// at index 0 is never skipped, as it would be by taking low = high/2 once
	// s[0] and s[1] both equal key.
	low, high := 0, 1
	for high < len(s) {
		c := cmp(s[high], key)
		if c == 0 {
			high++
			break
		}

		if c > 0 {
			break
		}

		low = high
		high *= 2
	}

	if high > len(s) {
		high = len(s)
	}

	i, found := BinaryFunc(s[low:high], key, cmp)
	if !found {
		return 0, false
	}

	return i + low, true
}
