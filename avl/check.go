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
	"errors"
	"fmt"
	"math"
)

var (
	ErrOrder   = errors.New("avl: ordering violated")
	ErrBalance = errors.New("avl: balance violated")
	ErrHeight  = errors.New("avl: stale height")
)

// Check walks the whole tree and reports the first node that breaks
// ordering, balance or the cached height.
func (tree *Tree) Check() error {
	_, err := check(tree.root, math.MinInt, math.MaxInt, false, false)
	return err
}

// check verifies that every value in the subtree lies strictly between
// low and high (bounds only apply when the has flags are set) and
// returns the computed height of the subtree.
func check(node *Node, low, high int, hasLow, hasHigh bool) (int, error) {
	if node == nil {
		return -1, nil
	}
	if (hasLow && node.value <= low) || (hasHigh && node.value >= high) {
		return 0, fmt.Errorf("%w: node %d outside (%s, %s)", ErrOrder, node.value, bound(low, hasLow), bound(high, hasHigh))
	}

	lh, err := check(node.left, low, node.value, hasLow, true)
	if err != nil {
		return 0, err
	}
	rh, err := check(node.right, node.value, high, true, hasHigh)
	if err != nil {
		return 0, err
	}

	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: node %d left height %d right height %d", ErrBalance, node.value, lh, rh)
	}
	h := max(lh, rh) + 1
	if node.height != h {
		return 0, fmt.Errorf("%w: node %d cached %d actual %d", ErrHeight, node.value, node.height, h)
	}
	return h, nil
}

func bound(v int, ok bool) string {
	if !ok {
		return "∞"
	}
	return fmt.Sprint(v)
}

// MaxHeight is the worst case height of an AVL tree holding n nodes.
func MaxHeight(n int) float64 {
	return 1.44*math.Log2(float64(n)+2) - 0.328
}
