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

// Remove deletes value from the tree and rebalances it. Removing a
// value that is not present is a no-op and returns false.
func (tree *Tree) Remove(value int) bool {
	removed := false
	tree.root, removed = remove(tree.root, value)
	return removed
}

func remove(node *Node, value int) (*Node, bool) {
	if node == nil {
		return nil, false // not found
	}

	removed := false
	switch {
	case value < node.value:
		node.left, removed = remove(node.left, value)
	case value > node.value:
		node.right, removed = remove(node.right, value)
	case node.left != nil && node.right != nil:
		// take over the in-order predecessor, then drop it from the
		// left subtree where it has no right child
		node.value = findMax(node.left).value
		node.left, removed = remove(node.left, node.value)
	default:
		child := node.left
		if child == nil {
			child = node.right
		}
		freeNode(node)
		return child, true
	}

	if !removed {
		return node, false
	}
	return rebalance(node), true
}

// findMax returns the right-most node of a non-empty subtree.
func findMax(node *Node) *Node {
	for node.right != nil {
		node = node.right
	}
	return node
}
