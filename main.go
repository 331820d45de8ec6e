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
	"os/signal"
	"strings"

	"github.com/cybrota/avlbench/workloads"
	"github.com/spf13/cobra"
)

// setup loads the configuration and the log backend shared by every command
func setup() (*Config, *logBackend, error) {
	InitializeColors()

	config, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%sInvalid configuration: %v. Using default settings.%s\n", Warning, err, Reset)
		cfg := defaultConfig()
		config = &cfg
	}

	backend, err := newLogBackend(config.Log)
	if err != nil {
		return nil, nil, err
	}
	return config, backend, nil
}

func newBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time inserting workloads into a balanced tree",
		Long:  "Bench inserts every value of each workload into a fresh tree, times it, verifies the tree and prints a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, backend, err := setup()
			if err != nil {
				return err
			}
			defer backend.Close()

			flags := cmd.Flags()
			if flags.Changed("size") {
				config.Bench.Size, _ = flags.GetInt("size")
			}
			if flags.Changed("rounds") {
				config.Bench.Rounds, _ = flags.GetInt("rounds")
			}
			if flags.Changed("seed") {
				config.Bench.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("workload") {
				config.Bench.Workloads, _ = flags.GetStringSlice("workload")
			}
			if flags.Changed("precision") {
				config.Bench.Precision, _ = flags.GetInt("precision")
			}
			if flags.Changed("progress") {
				config.Bench.ShowProgress, _ = flags.GetBool("progress")
			}
			if err := config.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			bench := NewBench(config.Bench, workloads.NewManager(), backend.GetLogger("bench"))
			results, err := bench.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Print(RenderReport(Summarize(results), config.Bench.Precision, NewStyles()))
			return nil
		},
	}

	cmd.Flags().Int("size", 0, "number of values per workload")
	cmd.Flags().Int("rounds", 0, "rounds per workload")
	cmd.Flags().Int64("seed", 0, "random seed (0 = time based)")
	cmd.Flags().StringSlice("workload", nil, "workload to time: "+strings.Join(workloads.NewManager().Names(), ", "))
	cmd.Flags().Int("precision", 0, "decimals of the timings")
	cmd.Flags().Bool("progress", true, "show a progress bar")
	return cmd
}

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [values...]",
		Short: "Build a tree from values and print it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, backend, err := setup()
			if err != nil {
				return err
			}
			defer backend.Close()

			insert, err := parseWords(args)
			if err != nil {
				return err
			}
			valuesFlag, _ := cmd.Flags().GetString("values")
			extra, err := parseValues(valuesFlag)
			if err != nil {
				return err
			}
			insert = append(insert, extra...)

			removeFlag, _ := cmd.Flags().GetString("remove")
			remove, err := parseValues(removeFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tree := buildTree(out, insert, remove)
			if err := describeTree(out, tree); err != nil {
				return err
			}

			if copyValues, _ := cmd.Flags().GetBool("copy"); copyValues {
				if err := copyToClipboard(joinValues(tree.Values())); err != nil {
					backend.GetLogger("build").Warningf("failed to copy to clipboard: %v", err)
				} else {
					fmt.Fprintf(os.Stderr, "📋 Copied in-order values to clipboard.\n")
				}
			}
			return nil
		},
	}

	cmd.Flags().String("values", "", "values to insert, space or comma separated")
	cmd.Flags().String("remove", "", "values to remove after inserting")
	cmd.Flags().Bool("copy", false, "copy the in-order values to the clipboard")
	return cmd
}

func main() {
	var cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "Interactive tree playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, backend, err := setup()
			if err != nil {
				return err
			}
			defer backend.Close()
			return runPlayground(backend.GetLogger("play"))
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default one if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			InitializeColors()
			return displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlbench usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlbench version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlbench",
		Version:       version,
		Short:         "Build, inspect and time an AVL tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newBenchCommand(), newBuildCommand(), cmdPlay, cmdSettings, cmdUsage, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", Error, err, Reset)
		os.Exit(1)
	}
}
