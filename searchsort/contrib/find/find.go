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

package find

import "github.com/ajroetker/go-searchsort/searchsort"

// FindMe returns the index of an occurrence of element in data[start:end+1],
// or searchsort.NotFound if there is none.
//
// The closed range [start, end] must satisfy 0 <= start <= end < len(data);
// any other range reports NotFound. Probes run in this order:
//   - data[start]
//   - data[end]
//   - data[(start+end)/2]
//   - FindMe on [start, middle-1], then on [middle+1, end]
//
// The first probe that matches wins.
func FindMe[T searchsort.Ordered](data []T, element T, start, end int) int {
	return FindMeFunc(data, element, start, end, equal[T])
}

// FindMeFunc is FindMe with a caller-supplied equality test, for element
// types that are not searchsort.Ordered. The probe order is the same.
func FindMeFunc[T any](data []T, element T, start, end int, eq func(a, b T) bool) int {
	if !inRange(len(data), start, end) {
		return searchsort.NotFound
	}
	return findRange(data, element, start, end, eq)
}

// Contains reports whether element occurs anywhere in data.
func Contains[T searchsort.Ordered](data []T, element T) bool {
	return FindMe(data, element, 0, len(data)-1) != searchsort.NotFound
}

func inRange(n, start, end int) bool {
	return start >= 0 && start <= end && end < n
}

// findRange assumes 0 <= start <= end < len(data).
func findRange[T any](data []T, element T, start, end int, eq func(a, b T) bool) int {
	if eq(data[start], element) {
		return start
	}
	if eq(data[end], element) {
		return end
	}

	middle := start + (end-start)/2
	if eq(data[middle], element) {
		return middle
	}

	// The left half is empty when middle == start, which covers middle == 0.
	if middle > start {
		if idx := findRange(data, element, start, middle-1, eq); idx != searchsort.NotFound {
			return idx
		}
	}
	if middle < end {
		return findRange(data, element, middle+1, end, eq)
	}
	return searchsort.NotFound
}

func equal[T searchsort.Ordered](a, b T) bool {
	return a == b
}
