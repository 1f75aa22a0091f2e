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

package sort

import (
	"cmp"

	"github.com/ajroetker/go-searchsort/searchsort"
)

// Quicksort sorts data in ascending order in place.
//
// Elements are ordered by cmp.Compare, so a float NaN sorts before every
// other value and compares equal to another NaN.
func Quicksort[T searchsort.Ordered](data []T) {
	QuicksortFunc(data, cmp.Compare[T])
}

// QuicksortFunc sorts data in place in the order defined by cmp.
func QuicksortFunc[T any](data []T, cmp func(a, b T) int) {
	quicksort(data, cmp)
}

// quicksort returns the largest number of pending ranges it held at once.
func quicksort[T any](data []T, cmp func(a, b T) int) (maxPending int) {
	if len(data) <= 1 {
		return 0
	}

	// Half-open [lo, hi) ranges still to be sorted.
	type span struct{ lo, hi int }
	stack := []span{{0, len(data)}}
	maxPending = 1

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := s.lo + PartitionFunc(data[s.lo:s.hi], cmp)
		left := span{s.lo, p}
		right := span{p + 1, s.hi}

		if left.hi-left.lo < right.hi-right.lo {
			left, right = right, left
		}
		// left is now the larger side; push it first so it is popped last.
		if left.hi-left.lo > 1 {
			stack = append(stack, left)
		}
		if right.hi-right.lo > 1 {
			stack = append(stack, right)
		}
		maxPending = max(maxPending, len(stack))
	}
	return maxPending
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T searchsort.Ordered](data []T) bool {
	return IsSortedFunc(data, cmp.Compare[T])
}

// IsSortedFunc reports whether data is in non-decreasing order under cmp.
func IsSortedFunc[T any](data []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if cmp(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}
