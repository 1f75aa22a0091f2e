// Copyright 2026 go-searchsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sort provides an in-place quicksort built on Lomuto partitioning.
//
// # Algorithm
//
// The pivot is always the last element of the range being partitioned.
// Every element <= pivot is moved in front of it, the pivot is swapped into
// its final slot, and the two sides are sorted independently. There is no
// pivot sampling, no insertion-sort cutoff and no heapsort fallback, so
// sorted, reverse-sorted and all-equal input all take O(n²) comparisons.
//
// Pending ranges are kept on an explicit stack instead of the call stack.
// The larger side is pushed first so the smaller side is handled next,
// which bounds the stack to O(log n) entries on any input.
//
// The sort is not stable.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-searchsort/searchsort/contrib/sort"
//
//	data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5}
//	sort.Quicksort(data) // [1 1 2 3 4 5 5 6 9]
//
//	words := []string{"kiwi", "Fig", "apple"}
//	sort.QuicksortFunc(words, func(a, b string) int {
//	    return cmp.Compare(strings.ToLower(a), strings.ToLower(b))
//	})
package sort
