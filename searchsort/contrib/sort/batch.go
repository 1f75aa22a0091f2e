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
	"github.com/ajroetker/go-searchsort/searchsort"
	"github.com/ajroetker/go-searchsort/searchsort/contrib/workerpool"
)

// SortBatch sorts every slice in batch with Quicksort, spreading the slices
// over pool. Each slice is sorted by exactly one worker, so the slices must
// not overlap. A nil pool sorts them one after another on the caller's
// goroutine.
func SortBatch[T searchsort.Ordered](pool *workerpool.Pool, batch [][]T) {
	if pool == nil {
		for _, data := range batch {
			Quicksort(data)
		}
		return
	}
	pool.ParallelForAtomic(len(batch), func(i int) {
		Quicksort(batch[i])
	})
}

// SortBatchFunc is SortBatch ordered by cmp.
func SortBatchFunc[T any](pool *workerpool.Pool, batch [][]T, cmp func(a, b T) int) {
	if pool == nil {
		for _, data := range batch {
			QuicksortFunc(data, cmp)
		}
		return
	}
	pool.ParallelForAtomic(len(batch), func(i int) {
		QuicksortFunc(batch[i], cmp)
	})
}
