// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/wptdiff/wptdiff/internal/config"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

// TallyTable renders the per-status counts of one snapshot in tabular form,
// ordered by rank tier then name. The optional subtest column appears when
// showSubtests is set. Padding comes from the "padding" config key.
func TallyTable(rpt *wpt.Report, showSubtests bool, colored bool) string {
	tally := rpt.StatusTally()
	subTally := rpt.SubtestStatusTally()

	union := make(map[wpt.Status]int, len(tally)+len(subTally))
	for s, n := range tally {
		union[s] += n
	}
	if showSubtests {
		for s, n := range subTally {
			union[s] += n
		}
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	p := Plain()
	if colored {
		p = Colored()
	}

	var rows [][]string
	for _, s := range wpt.SortStatuses(union) {
		row := []string{
			statusText(s, p),
			humanize.Comma(int64(tally[s])),
		}
		if showSubtests {
			row = append(row, humanize.Comma(int64(subTally[s])))
		}
		rows = append(rows, row)
	}

	headers := []string{"STATUS", "TESTS"}
	if showSubtests {
		headers = append(headers, "SUBTESTS")
	}

	pad, _ := config.GetInt("padding", 2)
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers(headers...).
		BorderHeader(false).
		Rows(rows...)

	return fmt.Sprint(t)
}
