// Copyright 2025 Naren Yellavula
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

package workloads

import "math/rand"

// SortedGenerator yields 0..n-1, the worst case for an unbalanced tree
type SortedGenerator struct{}

func (s *SortedGenerator) Name() string {
	return "sorted"
}

func (s *SortedGenerator) Description() string {
	return "Sorted:"
}

func (s *SortedGenerator) Priority() int {
	return 3
}

func (s *SortedGenerator) Generate(n int, _ *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values
}

// ReverseGenerator yields n down to 1
type ReverseGenerator struct{}

func (r *ReverseGenerator) Name() string {
	return "reverse"
}

func (r *ReverseGenerator) Description() string {
	return "Sorted: Reverse"
}

func (r *ReverseGenerator) Priority() int {
	return 4
}

func (r *ReverseGenerator) Generate(n int, _ *rand.Rand) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = n - i
	}
	return values
}
