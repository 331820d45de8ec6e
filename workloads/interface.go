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

// RandMax is the upper bound of the random workload, the classic
// RAND_MAX of C libraries.
const RandMax = 32767

// Generator produces the input sequence a timing run inserts into a tree
type Generator interface {
	Name() string
	Description() string
	Generate(n int, rng *rand.Rand) []int
	Priority() int // Lower number = listed first
}
