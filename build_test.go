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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected []int
		Err      bool
	}{
		{Name: "spaces", Input: "5 3 8", Expected: []int{5, 3, 8}},
		{Name: "commas", Input: "5,3, 8", Expected: []int{5, 3, 8}},
		{Name: "quoted", Input: `'1' "-2"`, Expected: []int{1, -2}},
		{Name: "empty", Input: "", Expected: nil},
		{Name: "not a number", Input: "5 x", Err: true},
		{Name: "unterminated quote", Input: `"5`, Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			values, err := parseValues(tc.Input)
			if tc.Err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, values)
		})
	}
}

func TestBuildAndDescribeTree(t *testing.T) {
	var out bytes.Buffer

	tree := buildTree(&out, []int{5, 3, 8, 1, 4, 7, 9, 3}, []int{5, 42})
	assert.Contains(t, out.String(), "skipped duplicate 3")
	assert.Contains(t, out.String(), "42 not in tree")

	out.Reset()
	require.NoError(t, describeTree(&out, tree))
	assert.Contains(t, out.String(), "in-order: 1 3 4 7 8 9")
	assert.Contains(t, out.String(), "size: 6  height: 2")
	assert.Contains(t, out.String(), "check: ok")
}
