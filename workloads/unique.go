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

import (
	"encoding/binary"
	"math/rand"

	"github.com/willf/bloom"
)

// falsePositiveRate of the seen-set. A false positive only throws away
// an unused candidate, so it costs a retry and never a duplicate.
const falsePositiveRate = 0.01

// UniqueGenerator draws n distinct values from [0, 4n)
type UniqueGenerator struct{}

func (u *UniqueGenerator) Name() string {
	return "unique"
}

func (u *UniqueGenerator) Description() string {
	return "Rand: distinct"
}

func (u *UniqueGenerator) Priority() int {
	return 5
}

func (u *UniqueGenerator) Generate(n int, rng *rand.Rand) []int {
	values := make([]int, 0, n)
	if n <= 0 {
		return values
	}

	seen := bloom.NewWithEstimates(uint(n), falsePositiveRate)
	key := make([]byte, 8)
	span := 4 * n
	for len(values) < n {
		v := rng.Intn(span)
		binary.LittleEndian.PutUint64(key, uint64(v))
		if seen.Test(key) {
			continue
		}
		seen.Add(key)
		values = append(values, v)
	}
	return values
}
