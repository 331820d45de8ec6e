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

// Insert adds value to the tree and rebalances it. It returns false,
// leaving the tree unchanged, when value is already present.
func (tree *Tree) Insert(value int) bool {
	added := false
	tree.root, added = insert(tree.root, value)
	return added
}

func insert(node *Node, value int) (*Node, bool) {
	if node == nil {
		return newNode(value), true
	}

	added := false
	switch {
	case value < node.value:
		node.left, added = insert(node.left, value)
	case value > node.value:
		node.right, added = insert(node.right, value)
	default:
		return node, false
	}

	return rebalance(node), added
}
