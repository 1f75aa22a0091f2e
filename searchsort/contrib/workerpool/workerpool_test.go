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

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	assert.Equal(t, 4, pool.NumWorkers())
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	assert.Equal(t, runtime.GOMAXPROCS(0), pool.NumWorkers())
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	hits := make([]int32, n)
	pool.ParallelForAtomic(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	})
	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestParallelForAtomicZero(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelForAtomic(0, func(int) { called = true })
	pool.ParallelForAtomic(-1, func(int) { called = true })
	assert.False(t, called)
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	sum := 0
	pool.ParallelForAtomic(10, func(i int) { sum += i })
	assert.Equal(t, 45, sum)
}

func TestPoolReuse(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	var total atomic.Int64
	for range 50 {
		pool.ParallelForAtomic(20, func(i int) { total.Add(int64(i)) })
	}
	assert.Equal(t, int64(50*190), total.Load())
}
