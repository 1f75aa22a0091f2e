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

// Partition rearranges data around its last element and returns the
// pivot's final index p. Afterwards data[p] is the pivot, data[:p] holds
// the elements <= pivot and data[p+1:] the elements > pivot.
// Elements are ordered by cmp.Compare, so a float NaN counts as smaller than
// every other value.
//
// data must not be empty.
func Partition[T searchsort.Ordered](data []T) int {
	return PartitionFunc(data, cmp.Compare[T])
}

// PartitionFunc is Partition ordered by cmp, which returns a negative
// number, zero or a positive number as in cmp.Compare.
func PartitionFunc[T any](data []T, cmp func(a, b T) int) int {
	n := len(data)
	if n == 0 {
		panic("sort: partition of empty slice")
	}

	last := n - 1
	pivot := data[last]
	i := 0
	for j := range last {
		if cmp(data[j], pivot) <= 0 {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[last] = data[last], data[i]
	return i
}
