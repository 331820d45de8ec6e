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
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avlbench/avl"
	"github.com/mattn/go-shellwords"
)

// parseValues turns "5 3 8", "5,3,8" or "'5' 3" into ints
func parseValues(input string) ([]int, error) {
	words, err := shellwords.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse values %q: %v", input, err)
	}
	return parseWords(words)
}

func parseWords(words []string) ([]int, error) {
	var values []int
	for _, word := range words {
		for _, field := range strings.Split(word, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", field)
			}
			values = append(values, v)
		}
	}
	return values, nil
}

// buildTree inserts and then removes the given values, reporting each
// rejected duplicate and each missing value to w
func buildTree(w io.Writer, insert, remove []int) *avl.Tree {
	tree := avl.New()
	for _, v := range insert {
		if !tree.Insert(v) {
			fmt.Fprintf(w, "%sskipped duplicate %d%s\n", Warning, v, Reset)
		}
	}
	for _, v := range remove {
		if !tree.Remove(v) {
			fmt.Fprintf(w, "%s%d not in tree%s\n", Warning, v, Reset)
		}
	}
	return tree
}

// describeTree prints the shape followed by the summary lines
func describeTree(w io.Writer, tree *avl.Tree) error {
	tree.Print(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "in-order: %s\n", joinValues(tree.Values()))
	fmt.Fprintf(w, "size: %d  height: %d\n", tree.Size(), tree.Height())

	if err := tree.Check(); err != nil {
		fmt.Fprintf(w, "%scheck: %v%s\n", Error, err, Reset)
		return err
	}
	fmt.Fprintf(w, "%scheck: ok%s\n", Green, Reset)
	return nil
}

func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	return nil
}
