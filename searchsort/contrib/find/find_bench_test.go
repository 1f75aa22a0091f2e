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

import "testing"

func BenchmarkFindMe_LastOf1M(b *testing.B) {
	data := make([]int, 1_000_000)
	for i := range data {
		data[i] = i
	}
	target := len(data) - 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := FindMe(data, target, 0, len(data)-1); got != target {
			b.Fatalf("FindMe = %d, want %d", got, target)
		}
	}
}

func BenchmarkFindMe_Miss1000(b *testing.B) {
	data := make([]int, 1000)
	for i := range data {
		data[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindMe(data, -1, 0, len(data)-1)
	}
}
