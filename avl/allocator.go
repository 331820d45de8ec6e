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
	"sync"
)

// Node is one stored value together with the cached height of the
// subtree rooted at it.
type Node struct {
	value  int
	left   *Node // exclusively owned
	right  *Node // exclusively owned
	height int   // -1 for an empty subtree, 0 for a leaf
}

// Value returns the stored value.
func (n *Node) Value() int {
	return n.value
}

// Left returns the left child, nil if there is none.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil if there is none.
func (n *Node) Right() *Node {
	return n.right
}

// Height returns the cached height of the subtree rooted at n.
func (n *Node) Height() int {
	return height(n)
}

// released nodes are chained through their left pointer
var (
	poolLock   sync.Mutex
	pool       *Node
	totalNodes int // nodes ever created
	freeNodes  int // nodes waiting in the pool
)

// newNode hands out a leaf, reusing a released node when one is available.
func newNode(value int) *Node {
	poolLock.Lock()
	defer poolLock.Unlock()

	if pool == nil {
		if freeNodes != 0 {
			panic("avl: node pool corrupt")
		}
		totalNodes++
		return &Node{value: value}
	}

	n := pool
	pool = n.left
	freeNodes--

	n.value = value
	n.left = nil
	n.right = nil
	n.height = 0
	return n
}

// freeNode returns an unlinked node to the pool. The caller must not
// touch n afterwards.
func freeNode(n *Node) {
	poolLock.Lock()
	defer poolLock.Unlock()

	n.right = nil
	n.value = 0
	n.height = 0
	n.left = pool
	pool = n
	freeNodes++
}

// PoolStats reports how many nodes have been allocated in total and how
// many of those are currently idle in the pool.
func PoolStats() (total int, free int) {
	poolLock.Lock()
	defer poolLock.Unlock()
	return totalNodes, freeNodes
}
