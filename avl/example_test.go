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

package avl_test

import (
	"fmt"
	"os"
	"slices"

	"github.com/cybrota/avlbench/avl"
)

func Example() {
	tree := avl.New()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(v)
	}
	tree.Remove(5)

	fmt.Println(slices.Collect(tree.InOrder()))
	fmt.Println("size:", tree.Size(), "height:", tree.Height())
	// Output:
	// [1 3 4 7 8 9]
	// size: 6 height: 2
}

func ExampleTree_Print() {
	tree := avl.FromValues(3, 2, 1)
	tree.Print(os.Stdout)
	// Output:
	//        /------+ 3 h=0 b=+0
	// |------+ 2 h=1 b=+0
	//        \------+ 1 h=0 b=+0
}

func ExampleTree_Clone() {
	a := avl.FromValues(5, 3, 8, 1, 4)
	b := a.Clone()
	b.Remove(3)

	fmt.Println(a.Values(), b.Values(), avl.Equal(a, b))
	// Output: [1 3 4 5 8] [1 4 5 8] false
}
