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

// Package find provides a range-bounded membership search over slices.
//
// FindMe is not a binary search. It does not need sorted input and it is not
// O(log n) in general: it probes the two range endpoints and the midpoint,
// then recurses into the left half before the right half. The index it
// reports for a target that occurs more than once is fixed by that probe
// order and is not necessarily the lowest one.
//
// Out-of-range, inverted and empty ranges are not errors. They report
// searchsort.NotFound, the same as a genuine miss.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-searchsort/searchsort/contrib/find"
//
//	data := []int{9, 5, 2, 7, 3}
//	find.FindMe(data, 5, 0, len(data)-1) // 1
//	find.FindMe(data, 5, 3, 1)           // searchsort.NotFound
package find
