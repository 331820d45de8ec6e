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

// RangeGenerator draws n values uniformly from [Low, High]
type RangeGenerator struct {
	name     string
	desc     string
	priority int
	Low      int
	High     int
}

// NewRandomGenerator covers the full [0, RandMax] range, so duplicates are rare
func NewRandomGenerator() *RangeGenerator {
	return &RangeGenerator{
		name:     "random",
		desc:     "Rand: 0-RAND_MAX",
		priority: 1,
		Low:      0,
		High:     RandMax,
	}
}

// NewSmallRangeGenerator only draws from [0, 5], so almost every insert is a duplicate
func NewSmallRangeGenerator() *RangeGenerator {
	return &RangeGenerator{
		name:     "small",
		desc:     "Rand: 0-5",
		priority: 2,
		Low:      0,
		High:     5,
	}
}

func (g *RangeGenerator) Name() string {
	return g.name
}

func (g *RangeGenerator) Description() string {
	return g.desc
}

func (g *RangeGenerator) Priority() int {
	return g.priority
}

func (g *RangeGenerator) Generate(n int, rng *rand.Rand) []int {
	values := make([]int, n)
	span := g.High + 1 - g.Low
	for i := range values {
		values[i] = rng.Intn(span) + g.Low
	}
	return values
}
