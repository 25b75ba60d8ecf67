// SPDX-License-Identifier: MIT
// Package: seqlath/evaluate
//
// render.go — terminal rendering of a Report.

package evaluate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Render draws, for each predictor, its name, the skipped count and a
// margin/passed/failed table.
func (r *Report) Render() string {
	var b strings.Builder
	for i := range r.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Results[i].Render())
	}

	return b.String()
}

// Render draws a single Result.
func (res *Result) Render() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("error margin", "passed", "failed").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, m := range res.Margins {
		t.Row(strconv.FormatFloat(m, 'g', -1, 64), strconv.Itoa(res.Passed[i]), strconv.Itoa(res.Failed[i]))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(res.Name),
		mutedStyle.Render(fmt.Sprintf("skipped %d", res.Skipped)),
		t.String(),
	)
}
