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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlbench %s**

Build, inspect and time a height balanced binary search tree (AVL) of integers.

Built with Go %s

# 1. Commands
* **bench**: time inserting a workload into a fresh tree (random, small, sorted, reverse, unique)
* **build**: insert and remove values, then print the tree, its in-order values and a consistency check
* **play**: interactive playground to insert, remove, save and restore a tree
* **settings**: show the configuration, creating a default one on first use
* **version**: print the version

# 2. Examples
* avlbench bench --size 50000 --rounds 3 --workload sorted --workload random
* avlbench build 5 3 8 1 4 7 9 --remove 5
* avlbench build --values "30 20 10" --copy

# 3. Tree rules
* Values are unique, inserting a duplicate is skipped
* Removing a missing value is a no-op
* Every insert and remove rebalances with at most one single or double rotation per level

# Configuration
Defaults live in ~/.avlbench.yaml, flags override them.

# Please be aware
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
