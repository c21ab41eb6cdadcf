//
// Copyright 2020, 2021 Kenneth J. Gibson
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package strategy implements the five human-style deduction rules that
// mutate candidate sets within a group: erasing pencil markings, last
// remaining cell, naked conjugates, hidden conjugates, and intersections.
package strategy

import (
	"fmt"
	"sort"
)

// combinations returns every k-length combination of items, preserving
// the relative order items were given in. items must already be in a
// deterministic order (the strategies only ever pass slices taken from a
// Group's construction-ordered cell list or from sortedKeys, never raw map
// iteration) so that repeated calls on equivalent puzzles choose the same
// subsets in the same order.
func combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}
	var out [][]T
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]T, k)
		for i, j := range idx {
			combo[i] = items[j]
		}
		out = append(out, combo)

		// advance idx to the next combination, odometer-style from the right
		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}

// sortedKeys returns the keys of m in a deterministic order. Go map
// iteration order is randomized per process, so any strategy that needs to
// enumerate symbols reproducibly (to satisfy the Determinism testable
// property) must sort them first; generic Symbol types only guarantee
// comparable, not an ordering, so the sort key is each symbol's %v
// formatting, which is stable for any concrete Symbol type used in
// practice (ints, strings, small structs).
func sortedKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprintf("%v", keys[i]) < fmt.Sprintf("%v", keys[j])
	})
	return keys
}
