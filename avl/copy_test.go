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

package avl

import (
	"math/rand"
	"slices"
	"testing"
)

func TestCloneIsIndependent(t *testing.T) {
	a := FromValues(5, 3, 8, 1, 4)
	b := a.Clone()

	b.Remove(3)

	if !slices.Equal(a.Values(), []int{1, 3, 4, 5, 8}) {
		t.Errorf("source changed: %v", a.Values())
	}
	if !slices.Equal(b.Values(), []int{1, 4, 5, 8}) {
		t.Errorf("copy holds %v", b.Values())
	}
	if err := b.Check(); err != nil {
		t.Error(err)
	}
}

func TestCloneKeepsShape(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, n := range []int{0, 1, 2, 3, 31, 32, 500} {
		src := New()
		for _, v := range rng.Perm(n * 3)[:n] {
			src.Insert(v)
		}
		// churn so the shape is not just the insertion order
		for _, v := range rng.Perm(n * 3)[:n/4] {
			src.Remove(v)
		}

		dup := src.Clone()
		if !Equal(src, dup) {
			t.Fatalf("n=%d: clone differs in shape", n)
		}
		if !slices.Equal(slices.Collect(src.LevelOrder()), slices.Collect(dup.LevelOrder())) {
			t.Fatalf("n=%d: level order differs", n)
		}
		if n > 0 && src.Root() == dup.Root() {
			t.Fatalf("n=%d: clone shares nodes", n)
		}
	}
}

func TestCopyFrom(t *testing.T) {
	src := FromValues(10, 5, 15, 3)
	dst := FromValues(1, 2, 3, 4, 5, 6)

	dst.CopyFrom(src)
	if !Equal(src, dst) {
		t.Errorf("destination does not match source")
	}

	src.Insert(20)
	if dst.Contains(20) {
		t.Errorf("destination follows source after copy")
	}
}

func TestCopyFromSelf(t *testing.T) {
	tree := FromValues(2, 1, 3)
	before := tree.Clone()

	tree.CopyFrom(tree)

	if !Equal(tree, before) || tree.Size() != 3 {
		t.Errorf("self copy changed the tree: %v", tree.Values())
	}
}

func TestClearReturnsNodesToPool(t *testing.T) {
	tree := FromValues(rand.New(rand.NewSource(3)).Perm(64)...)
	_, freeBefore := PoolStats()

	tree.Clear()

	total, freeAfter := PoolStats()
	if !tree.IsEmpty() {
		t.Fatal("tree not empty after Clear")
	}
	if freeAfter-freeBefore != 64 {
		t.Errorf("expected 64 released nodes, got %d", freeAfter-freeBefore)
	}

	FromValues(rand.New(rand.NewSource(4)).Perm(64)...)
	totalAgain, freeAgain := PoolStats()
	if totalAgain != total {
		t.Errorf("allocated %d new nodes instead of reusing the pool", totalAgain-total)
	}
	if freeAgain != freeBefore {
		t.Errorf("pool holds %d, expected %d", freeAgain, freeBefore)
	}
}

func TestRemoveReleasesNode(t *testing.T) {
	tree := FromValues(1, 2, 3)
	_, before := PoolStats()

	tree.Remove(2)
	tree.Remove(42)

	if _, after := PoolStats(); after != before+1 {
		t.Errorf("expected one released node, pool went from %d to %d", before, after)
	}
}
