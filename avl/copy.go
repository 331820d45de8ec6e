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

// Clone returns an independent copy of the tree with the same shape.
func (tree *Tree) Clone() *Tree {
	dup := New()
	dup.copyNodes(tree)
	return dup
}

// CopyFrom replaces the contents of tree with a copy of src. Copying a
// tree onto itself does nothing.
func (tree *Tree) CopyFrom(src *Tree) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.copyNodes(src)
}

// copyNodes re-inserts the values of src level by level. With unique
// keys a parent is always inserted before its children, so every value
// lands in the same position it holds in src and no rotation fires.
func (tree *Tree) copyNodes(src *Tree) {
	for value := range src.LevelOrder() {
		tree.Insert(value)
	}
}

// Clear releases every node and leaves the tree empty.
func (tree *Tree) Clear() {
	release(tree.root)
	tree.root = nil
}

// post order, so a node is released only after both of its subtrees
func release(node *Node) {
	if node == nil {
		return
	}
	release(node.left)
	release(node.right)
	freeNode(node)
}

// Equal reports whether a and b have identical shape, values and
// cached heights.
func Equal(a, b *Tree) bool {
	return equalNodes(a.root, b.root)
}

func equalNodes(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.value != b.value || a.height != b.height {
		return false
	}
	return equalNodes(a.left, b.left) && equalNodes(a.right, b.right)
}
