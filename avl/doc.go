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

// Package avl implements a height balanced binary search tree of ints.
//
// Every node caches the height of its subtree (an empty subtree is -1,
// a leaf is 0). Insert and Remove recurse down from the root and, as
// each frame returns, run a single rebalance step on that frame's node
// which applies at most one (single or double) rotation and refreshes
// the cached height. The recursive helpers return the possibly new
// head of the subtree and the caller stores it back into its own child
// slot, so no node ever needs a parent pointer.
//
// Keys are unique: inserting a value that is already present leaves the
// tree untouched and reports false.
//
// Note: a tree is not safe for concurrent use. Access it from a single
// go routine or guard it with a mutex.
package avl
