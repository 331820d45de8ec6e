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

func height(node *Node) int {
	if node == nil {
		return -1
	}
	return node.height
}

func updateHeight(node *Node) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rotateRight lifts the left child of node above it and returns the
// new head of the subtree.
//
//	    node          pivot
//	   /    \        /     \
//	pivot    c  =>  a      node
//	/   \                 /    \
//	a    b               b      c
func rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	// node is now below pivot, so it goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateLeftRight(node *Node) *Node {
	node.left = rotateLeft(node.left)
	return rotateRight(node)
}

func rotateRightLeft(node *Node) *Node {
	node.right = rotateRight(node.right)
	return rotateLeft(node)
}

// rebalance runs after every structural change below node. Both
// subtrees must already be balanced with correct heights; on return the
// subtree headed by the result is too.
func rebalance(node *Node) *Node {
	if node == nil {
		return nil
	}

	switch bf := balanceFactor(node); {
	case bf > 1: // left heavy
		if height(node.left.left) >= height(node.left.right) {
			node = rotateRight(node)
		} else {
			node = rotateLeftRight(node)
		}
	case bf < -1: // right heavy
		if height(node.right.right) >= height(node.right.left) {
			node = rotateLeft(node)
		} else {
			node = rotateRightLeft(node)
		}
	}

	updateHeight(node)
	return node
}
