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
	"fmt"
	"os"
	"time"

	"github.com/cybrota/avlbench/avl"
	"github.com/cybrota/avlbench/workloads"
	"github.com/schollz/progressbar/v3"
	"gopkg.in/op/go-logging.v1"
)

// Bench times how long it takes to insert a workload into a fresh tree
type Bench struct {
	Size         int
	Rounds       int
	Seed         int64
	Workloads    []string
	ShowProgress bool

	manager *workloads.Manager
	log     *logging.Logger
}

// Result is the outcome of one round of one workload
type Result struct {
	Workload    string
	Description string
	Round       int
	Size        int // values fed to the tree
	Inserted    int
	Rejected    int // duplicates turned away
	TreeSize    int
	Height      int
	Elapsed     time.Duration
}

// Summary folds all rounds of a workload into one row
type Summary struct {
	Workload    string
	Description string
	Rounds      int
	Size        int
	TreeSize    int
	Height      int
	Rejected    int
	Mean        time.Duration
}

func NewBench(cfg BenchConfig, manager *workloads.Manager, log *logging.Logger) *Bench {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Bench{
		Size:         cfg.Size,
		Rounds:       cfg.Rounds,
		Seed:         seed,
		Workloads:    cfg.Workloads,
		ShowProgress: cfg.ShowProgress,
		manager:      manager,
		log:          log,
	}
}

// Run executes every round of every workload. Each finished tree is
// verified and then released before the next round starts.
func (b *Bench) Run(ctx context.Context) ([]Result, error) {
	if b.Size <= 0 || b.Rounds <= 0 {
		return nil, fmt.Errorf("bench: size and rounds must be positive (size %d, rounds %d)", b.Size, b.Rounds)
	}
	for _, name := range b.Workloads {
		if _, err := b.manager.Get(name); err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
	}

	b.log.Noticef("Timing %d workload(s), %d values, %d round(s), seed %d", len(b.Workloads), b.Size, b.Rounds, b.Seed)

	var bar *progressbar.ProgressBar
	if b.ShowProgress {
		bar = progressbar.NewOptions(len(b.Workloads)*b.Rounds,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Timing inserts..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Timing completed!\n")
			}),
		)
	}

	results := make([]Result, 0, len(b.Workloads)*b.Rounds)
	for _, name := range b.Workloads {
		for round := 1; round <= b.Rounds; round++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if bar != nil {
				bar.Describe(fmt.Sprintf("🌳 Timing: %s #%d", name, round))
			}

			result, err := b.runRound(name, round)
			if err != nil {
				return results, err
			}
			b.log.Debugf("%s round %d: %d inserted, %d rejected, height %d in %v",
				name, round, result.Inserted, result.Rejected, result.Height, result.Elapsed)
			results = append(results, result)

			if bar != nil {
				bar.Add(1)
			}
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return results, nil
}

func (b *Bench) runRound(name string, round int) (Result, error) {
	g, err := b.manager.Get(name)
	if err != nil {
		return Result{}, err
	}
	values, err := b.manager.Workload(name, b.Size, b.Seed)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Workload:    name,
		Description: g.Description(),
		Round:       round,
		Size:        len(values),
	}

	tree := avl.New()
	start := time.Now()
	for _, v := range values {
		if tree.Insert(v) {
			result.Inserted++
		} else {
			result.Rejected++
		}
	}
	result.Elapsed = time.Since(start)

	if err := tree.Check(); err != nil {
		b.log.Errorf("%s round %d produced a broken tree: %v", name, round, err)
		return result, fmt.Errorf("bench: %s round %d: %w", name, round, err)
	}
	result.TreeSize = tree.Size()
	result.Height = tree.Height()
	if float64(result.Height) > avl.MaxHeight(result.TreeSize) {
		return result, fmt.Errorf("bench: %s round %d: height %d above bound %.2f", name, round, result.Height, avl.MaxHeight(result.TreeSize))
	}

	tree.Clear()
	return result, nil
}

// Summarize averages the rounds of each workload, keeping workload order
func Summarize(results []Result) []Summary {
	var summaries []Summary
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Workload]
		if !ok {
			i = len(summaries)
			index[r.Workload] = i
			summaries = append(summaries, Summary{
				Workload:    r.Workload,
				Description: r.Description,
				Size:        r.Size,
			})
		}
		s := &summaries[i]
		s.Rounds++
		s.Mean += r.Elapsed
		s.TreeSize = r.TreeSize
		s.Height = max(s.Height, r.Height)
		s.Rejected = r.Rejected
	}
	for i := range summaries {
		summaries[i].Mean /= time.Duration(summaries[i].Rounds)
	}
	return summaries
}
