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

// Package seq exposes the locator and the sorter as methods on a slice type.
//
//	s := seq.Seq[int]{3, 1, 4, 1, 5}
//	s.Quicksort()
//	i := s.FindMe(4, 0, len(s)-1)
package seq

import (
	"github.com/ajroetker/go-searchsort/searchsort"
	"github.com/ajroetker/go-searchsort/searchsort/contrib/find"
	"github.com/ajroetker/go-searchsort/searchsort/contrib/sort"
)

// SearchSort is implemented by sequences that can be searched over a
// closed index range and sorted in place.
type SearchSort[T any] interface {
	// FindMe returns the index of an occurrence of element in [start, end],
	// or searchsort.NotFound.
	FindMe(element T, start, end int) int
	// Quicksort sorts the sequence in ascending order in place.
	Quicksort()
}

// Seq is a slice of ordered elements implementing SearchSort.
type Seq[T searchsort.Ordered] []T

var _ SearchSort[int] = Seq[int](nil)

// FindMe calls find.FindMe on s.
func (s Seq[T]) FindMe(element T, start, end int) int {
	return find.FindMe([]T(s), element, start, end)
}

// Quicksort calls sort.Quicksort on s.
func (s Seq[T]) Quicksort() {
	sort.Quicksort([]T(s))
}

// IsSorted reports whether s is in non-decreasing order.
func (s Seq[T]) IsSorted() bool {
	return sort.IsSorted([]T(s))
}

// Len returns the number of elements in s.
func (s Seq[T]) Len() int {
	return len(s)
}
