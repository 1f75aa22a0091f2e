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

// Package searchsort holds the element constraints shared by the search and
// sort packages under searchsort/contrib.
//
// # Subpackages
//
//   - find: range-bounded recursive membership search (FindMe)
//   - sort: Lomuto partition and in-place quicksort
//   - seq: method form of both operations on a slice type
//   - workerpool: persistent worker pool used for batch sorting
package searchsort

import "cmp"

// Ordered is a constraint for element types that support ==, < and <=
// and are copied by plain assignment.
type Ordered interface {
	cmp.Ordered
}

// NotFound is returned by the locator functions when no index in the
// requested range holds the target.
const NotFound = -1
