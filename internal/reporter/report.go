// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/wptdiff/wptdiff/internal/wpt"
)

// RenderReport summarizes a single snapshot: totals, run age, and (beyond
// the summary level) a detail listing sorted worst-first so failures lead.
// The per-status tally is rendered separately by TallyTable so the command
// layer can interleave it.
func RenderReport(rpt *wpt.Report, opts Options) []string {
	lines := ReportHeader(rpt, opts)
	lines = append(lines, ReportDetails(rpt, opts)...)
	return lines
}

// ReportHeader renders the totals and run-age lines of a single report.
func ReportHeader(rpt *wpt.Report, opts Options) []string {
	opts = opts.normalize()
	p := opts.Palette

	header := fmt.Sprintf("%s %s", p.Header("Tests:"), humanize.Comma(int64(rpt.TotalTests())))
	if !rpt.TimeEnd.IsZero() {
		header += fmt.Sprintf("  (run finished %s)", humanize.Time(rpt.TimeEnd))
	}
	lines := []string{header}

	if opts.ShowSubtests {
		lines = append(lines,
			fmt.Sprintf("%s %s", p.Header("Subtests:"), humanize.Comma(int64(rpt.TotalSubtests()))))
	}

	return lines
}

// ReportDetails lists tests ordered by (rank tier descending, path), so the
// worst outcomes come first, truncated like every other section. Summary-ish
// detail levels produce no lines.
func ReportDetails(rpt *wpt.Report, opts Options) []string {
	opts = opts.normalize()
	if opts.DetailLevel != DetailChanges && opts.DetailLevel != DetailAll {
		return nil
	}
	return detailListing(rpt, opts)
}

func detailListing(rpt *wpt.Report, opts Options) []string {
	p := opts.Palette

	ordered := make([]wpt.Result, 0, len(rpt.Results))
	for _, res := range rpt.Results {
		if opts.FailuresOnly && res.Status.Passing() {
			continue
		}
		ordered = append(ordered, res)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ri, _ := ordered[i].Status.Rank()
		rj, _ := ordered[j].Status.Rank()
		if ri != rj {
			return ri > rj
		}
		return ordered[i].Test < ordered[j].Test
	})

	lines := []string{"", p.Header("Test details:")}

	max := opts.MaxDetails
	if max <= 0 || max > len(ordered) {
		max = len(ordered)
	}

	for _, res := range ordered[:max] {
		lines = append(lines, fmt.Sprintf("  %s (%s)", res.Test, statusText(res.Status, p)))
		if opts.ShowSubtests {
			for _, name := range sortedSubtestNames(res.Subtests) {
				sub := res.Subtests[name]
				lines = append(lines, fmt.Sprintf("    %s (%s)", sub.Name, statusText(sub.Status, p)))
			}
		}
	}

	if rest := len(ordered) - max; rest > 0 {
		lines = append(lines, fmt.Sprintf("  ... and %d more", rest))
	}

	return lines
}

func sortedSubtestNames(subs map[string]wpt.Subtest) []string {
	names := make([]string, 0, len(subs))
	for n := range subs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Summary is the marshalable shape emitted for --output json/yaml on the
// report command.
type Summary struct {
	Source       string             `json:"source" yaml:"source"`
	Tests        int                `json:"tests" yaml:"tests"`
	Subtests     int                `json:"subtests" yaml:"subtests"`
	Tally        map[wpt.Status]int `json:"tally" yaml:"tally"`
	SubtestTally map[wpt.Status]int `json:"subtestTally,omitempty" yaml:"subtestTally,omitempty"`
}

// Summarize builds the marshalable summary for one report.
func Summarize(rpt *wpt.Report, showSubtests bool) Summary {
	s := Summary{
		Source:   rpt.Source,
		Tests:    rpt.TotalTests(),
		Subtests: rpt.TotalSubtests(),
		Tally:    rpt.StatusTally(),
	}
	if showSubtests {
		s.SubtestTally = rpt.SubtestStatusTally()
	}
	return s
}

