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
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderReport lays the summaries out as a table. Times are seconds with
// the given number of decimals.
func RenderReport(summaries []Summary, precision int, styles *Styles) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Description,
			strconv.Itoa(s.Size),
			strconv.Itoa(s.TreeSize),
			strconv.Itoa(s.Rejected),
			strconv.Itoa(s.Height),
			strconv.Itoa(s.Rounds),
			strconv.FormatFloat(s.Mean.Seconds(), 'f', precision, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Workload", "Values", "Tree size", "Rejected", "Height", "Rounds", "Balanced BST (s)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		})

	return fmt.Sprintf("%s\n%s\n", t.Render(), styles.HelpDesc.Render("DONE! all times are in seconds"))
}
