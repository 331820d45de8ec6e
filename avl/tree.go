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

// Tree holds the root of a balanced tree. The zero value is an empty
// tree ready to use.
type Tree struct {
	root *Node
}

// New creates an initially empty tree.
func New() *Tree {
	return &Tree{root: nil}
}

// FromValues builds a tree by inserting values in the given order.
// Duplicates are skipped.
func FromValues(values ...int) *Tree {
	tree := New()
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// IsEmpty reports whether the tree has no nodes.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Size counts the nodes in the tree.
func (tree *Tree) Size() int {
	return size(tree.root)
}

func size(node *Node) int {
	if node == nil {
		return 0
	}
	return 1 + size(node.left) + size(node.right)
}

// Height returns the height of the tree, -1 when it is empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}
