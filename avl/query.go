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
	"iter"
)

// InOrder yields the stored values in ascending order. The sequence is
// lazy and can be ranged over any number of times; it must not be used
// while the tree is being modified.
func (tree *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		inOrder(tree.root, yield)
	}
}

// inOrder returns false once yield has asked to stop
func inOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) &&
		yield(node.value) &&
		inOrder(node.right, yield)
}

// LevelOrder yields the stored values breadth first, top level first
// and left to right within a level.
func (tree *Tree) LevelOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if tree.root == nil {
			return
		}
		queue := []*Node{tree.root}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if node.left != nil {
				queue = append(queue, node.left)
			}
			if node.right != nil {
				queue = append(queue, node.right)
			}
			if !yield(node.value) {
				return
			}
		}
	}
}

// Values collects the in-order sequence into a slice.
func (tree *Tree) Values() []int {
	values := make([]int, 0, tree.Size())
	for v := range tree.InOrder() {
		values = append(values, v)
	}
	return values
}

// Contains reports whether value is stored in the tree.
func (tree *Tree) Contains(value int) bool {
	node := tree.root
	for node != nil {
		switch {
		case value < node.value:
			node = node.left
		case value > node.value:
			node = node.right
		default:
			return true
		}
	}
	return false
}

// Min returns the lowest value, or false if the tree is empty.
func (tree *Tree) Min() (int, bool) {
	node := tree.root
	if node == nil {
		return 0, false
	}
	for node.left != nil {
		node = node.left
	}
	return node.value, true
}

// Max returns the highest value, or false if the tree is empty.
func (tree *Tree) Max() (int, bool) {
	if tree.root == nil {
		return 0, false
	}
	return findMax(tree.root).value, true
}
