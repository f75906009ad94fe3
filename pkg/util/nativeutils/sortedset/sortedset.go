// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

// Package sortedset keeps big integers, usually decoded keys, in ascending
// order without duplicates.
package sortedset

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dusk-network/dusk-search/pkg/search"
)

// Set is ordered ascending and holds no duplicates.
type Set []*big.Int

func (v Set) Len() int           { return len(v) }
func (v Set) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v Set) Less(i, j int) bool { return v[i].Cmp(v[j]) < 0 }

// New returns an empty Set.
func New() Set {
	return make([]*big.Int, 0)
}

// Equal reports whether both sets hold the same values.
func (v Set) Equal(other Set) bool {
	if len(v) != len(other) {
		return false
	}

	for i := range v {
		if v[i].Cmp(other[i]) != 0 {
			return false
		}
	}

	return true
}

func cmpInt(e, k *big.Int) int {
	return e.Cmp(k)
}

func (v Set) indexOf(k *big.Int) (int, bool) {
	return search.BinaryFunc(v, k, cmpInt)
}

// lowerBound is the index of the first element not lower than k.
func (v Set) lowerBound(k *big.Int) int {
	i, found := search.Range(0, len(v), func(i int) bool {
		return v[i].Cmp(k) < 0
	})
	if !found {
		return 0
	}
	return i + 1
}

// IndexOf returns the position of the big-endian integer b in the set.
func (v Set) IndexOf(b []byte) (int, bool) {
	return v.indexOf(new(big.Int).SetBytes(b))
}

// Has reports whether b is in the set.
func (v Set) Has(b []byte) bool {
	_, found := v.IndexOf(b)
	return found
}

// Insert b at its position. If b is already in the set it does nothing and
// returns false.
func (v *Set) Insert(b []byte) bool {
	iRepr := new(big.Int).SetBytes(b)

	idx := v.lowerBound(iRepr)
	if idx < len(*v) && (*v)[idx].Cmp(iRepr) == 0 {
		return false
	}

	*v = append(*v, nil)
	copy((*v)[idx+1:], (*v)[idx:])
	(*v)[idx] = iRepr
	return true
}

// Remove an entry from the set. Return false if the entry can't be found
func (v *Set) Remove(b []byte) bool {
	i, found := v.IndexOf(b)
	if !found {
		return false
	}

	*v = append((*v)[:i], (*v)[i+1:]...)
	return true
}

func (v Set) String() string {
	var str strings.Builder
	for i, bi := range v {
		str.WriteString("idx: ")
		str.WriteString(strconv.Itoa(i))
		str.WriteString(" nr: ")
		str.WriteString(shortStr(bi))
		str.WriteString("\n")
	}
	return str.String()
}

func shortStr(i *big.Int) string {
	iStr := i.String()
	if len(iStr) <= 6 {
		return iStr
	}

	var str strings.Builder
	str.WriteString(iStr[:3])
	str.WriteString("...")
	str.WriteString(iStr[len(iStr)-3:])
	return str.String()
}
