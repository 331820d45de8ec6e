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
	"context"
	"testing"
	"time"

	"github.com/cybrota/avlbench/workloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"
)

func quietLogger(t *testing.T) *logging.Logger {
	t.Helper()
	backend, err := newLogBackend(LogConfig{Level: "ERROR", Disable: true})
	require.NoError(t, err)
	return backend.GetLogger("bench")
}

func TestBenchRun(t *testing.T) {
	cfg := BenchConfig{
		Size:      500,
		Rounds:    2,
		Seed:      7,
		Workloads: []string{"random", "small", "sorted", "reverse", "unique"},
	}
	bench := NewBench(cfg, workloads.NewManager(), quietLogger(t))

	results, err := bench.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 10)

	for _, r := range results {
		assert.Equal(t, 500, r.Size)
		assert.Equal(t, r.Size, r.Inserted+r.Rejected, r.Workload)
		assert.Equal(t, r.Inserted, r.TreeSize, r.Workload)

		switch r.Workload {
		case "sorted", "reverse", "unique":
			assert.Zero(t, r.Rejected, r.Workload)
			assert.LessOrEqual(t, r.Height, 12, r.Workload)
		case "small":
			assert.LessOrEqual(t, r.TreeSize, 6)
		}
	}

	summaries := Summarize(results)
	require.Len(t, summaries, 5)
	assert.Equal(t, "random", summaries[0].Workload)
	for _, s := range summaries {
		assert.Equal(t, 2, s.Rounds)
	}
}

func TestBenchRoundsShareInput(t *testing.T) {
	cfg := BenchConfig{Size: 200, Rounds: 3, Seed: 1, Workloads: []string{"random"}}
	results, err := NewBench(cfg, workloads.NewManager(), quietLogger(t)).Run(context.Background())
	require.NoError(t, err)

	for _, r := range results[1:] {
		assert.Equal(t, results[0].TreeSize, r.TreeSize)
		assert.Equal(t, results[0].Rejected, r.Rejected)
	}
}

func TestBenchErrors(t *testing.T) {
	manager := workloads.NewManager()

	_, err := NewBench(BenchConfig{Size: 10, Rounds: 1, Workloads: []string{"bogus"}}, manager, quietLogger(t)).Run(context.Background())
	assert.ErrorIs(t, err, workloads.ErrUnknownWorkload)

	_, err = NewBench(BenchConfig{Size: 0, Rounds: 1, Workloads: []string{"sorted"}}, manager, quietLogger(t)).Run(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := NewBench(BenchConfig{Size: 10, Rounds: 1, Workloads: []string{"sorted"}}, manager, quietLogger(t)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestSummarizeAverages(t *testing.T) {
	results := []Result{
		{Workload: "sorted", Description: "Sorted:", Size: 4, TreeSize: 4, Height: 2, Elapsed: 2 * time.Second},
		{Workload: "small", Description: "Rand: 0-5", Size: 4, TreeSize: 3, Rejected: 1, Height: 1, Elapsed: time.Second},
		{Workload: "sorted", Description: "Sorted:", Size: 4, TreeSize: 4, Height: 2, Elapsed: 4 * time.Second},
	}

	summaries := Summarize(results)
	require.Len(t, summaries, 2)
	assert.Equal(t, "sorted", summaries[0].Workload)
	assert.Equal(t, 3*time.Second, summaries[0].Mean)
	assert.Equal(t, 2, summaries[0].Rounds)
	assert.Equal(t, 1, summaries[1].Rejected)
}

func TestRenderReport(t *testing.T) {
	summaries := []Summary{
		{Workload: "sorted", Description: "Sorted:", Rounds: 1, Size: 20000, TreeSize: 20000, Height: 14, Mean: 1500 * time.Microsecond},
	}

	report := RenderReport(summaries, 5, NewStyles())
	assert.Contains(t, report, "Balanced BST (s)")
	assert.Contains(t, report, "Sorted:")
	assert.Contains(t, report, "0.00150")
	assert.Contains(t, report, "DONE!")
}
