// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package search

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinary(t *testing.T) {
	v := []int{0, 1, 2, 3, 4, 6, 7, 8, 9}

	i, found := Binary(v, 3)
	assert.True(t, found)
	assert.Equal(t, 3, i)

	_, found = Binary(v, 10)
	assert.False(t, found)
	_, found = Binary(v, -1)
	assert.False(t, found)
	_, found = Binary(v, 5)
	assert.False(t, found)
}

// TestBinaryDuplicates checks that the lowest matching index is returned
func TestBinaryDuplicates(t *testing.T) {
	v := []int{1, 1, 1, 2, 2, 2, 3, 3, 3}

	for key, expected := range map[int]int{1: 0, 2: 3, 3: 6} {
		i, found := Binary(v, key)
		assert.True(t, found)
		assert.Equal(t, expected, i)
	}
}

func TestBinaryStrings(t *testing.T) {
	v := []string{"aaa", "abc", "bca"}

	i, found := Binary(v, "abc")
	assert.True(t, found)
	assert.Equal(t, 1, i)

	_, found = Binary(v, "a")
	assert.False(t, found)
	_, found = Binary(v, "c")
	assert.False(t, found)
}

func TestBinaryEmpty(t *testing.T) {
	_, found := Binary([]int{}, 0)
	assert.False(t, found)
	_, found = Binary[int](nil, 0)
	assert.False(t, found)
}

func TestBinaryFunc(t *testing.T) {
	type entry struct {
		name string
		size int
	}

	v := []entry{{"a", 1}, {"b", 4}, {"c", 4}, {"d", 9}}
	bySize := func(e entry, size int) int {
		return e.size - size
	}

	i, found := BinaryFunc(v, 4, bySize)
	assert.True(t, found)
	assert.Equal(t, "b", v[i].name)

	_, found = BinaryFunc(v, 5, bySize)
	assert.False(t, found)
}

// TestBinaryRandom compares Binary against a linear scan
func TestBinaryRandom(t *testing.T) {
	for round := 0; round < 200; round++ {
		v := randomSorted(rand.Intn(64), 20)

		for key := -2; key < 22; key++ {
			i, found := Binary(v, key)
			expected := linearSearch(v, key)
			if expected < 0 {
				assert.False(t, found, "key %d in %v", key, v)
				continue
			}

			assert.True(t, found, "key %d in %v", key, v)
			assert.Equal(t, expected, i, "key %d in %v", key, v)
		}
	}
}

func TestBinaryMatchesSortPackage(t *testing.T) {
	v := []string{"bar", "baz", "baz", "foo", "qux"}
	for _, key := range []string{"bar", "baz", "foo", "qux", "zzz", "a"} {
		i, found := Binary(v, key)
		lower := sort.SearchStrings(v, key)
		if found {
			assert.Equal(t, lower, i)
			continue
		}
		assert.True(t, lower == len(v) || strings.Compare(v[lower], key) != 0)
	}
}

func randomSorted(n, max int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = rand.Intn(max)
	}
	sort.Ints(v)
	return v
}

func linearSearch(v []int, key int) int {
	for i, e := range v {
		if e == key {
			return i
		}
	}
	return -1
}

func BenchmarkBinary(b *testing.B) {
	v := make([]int, 1<<16)
	for i := range v {
		v[i] = i * 2
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Binary(v, i%len(v))
	}
}
