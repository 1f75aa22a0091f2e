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

// Package contrib groups the algorithm packages built on the searchsort
// element constraints.
//
// # Locator (searchsort/contrib/find)
//
//	import "github.com/ajroetker/go-searchsort/searchsort/contrib/find"
//
//	data := []int{4, 82, 4, 32, 3, 20, 3, 2, 2, 9, 8, 7, 5, 0}
//	idx := find.FindMe(data, 5, 0, len(data)-1) // 12
//
// # Sorter (searchsort/contrib/sort)
//
//	import "github.com/ajroetker/go-searchsort/searchsort/contrib/sort"
//
//	data := []int{3, 1, 4, 1, 5, 9, 2, 6, 5}
//	sort.Quicksort(data) // [1 1 2 3 4 5 5 6 9]
//
// # Batch sorting (searchsort/contrib/workerpool)
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	sort.SortBatch(pool, batches)
package contrib
