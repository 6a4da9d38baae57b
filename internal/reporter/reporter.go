// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/wptdiff/wptdiff/internal/differ"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

// Detail levels accepted by Options.DetailLevel.
const (
	DetailSummary = "summary"
	DetailNew     = "new"
	DetailRemoved = "removed"
	DetailChanges = "changes"
	DetailAll     = "all"
)

// DetailLevels lists the accepted values in display order.
var DetailLevels = []string{DetailSummary, DetailNew, DetailRemoved, DetailChanges, DetailAll}

// Options controls how much detail Render emits.
type Options struct {
	DetailLevel  string
	MaxDetails   int // 0 shows all entries
	ShowSubtests bool
	FailuresOnly bool
	Palette      Palette
}

// normalize fills in zero-value options so Render never has to nil-check.
func (o Options) normalize() Options {
	if o.Palette.Header == nil {
		o.Palette = Plain()
	}
	if o.DetailLevel == "" {
		o.DetailLevel = DetailSummary
	}
	return o
}

// Render turns a diff result into an ordered sequence of text lines. The
// summary is always present; detail sections follow per DetailLevel, each
// truncated to MaxDetails entries with a trailing "... and N more" marker.
func Render(res *differ.Result, opts Options) []string {
	opts = opts.normalize()
	p := opts.Palette

	lines := []string{
		fmt.Sprintf("%s %s", p.Header("Tests:"),
			countChange(res.OldTotal, res.NewTotal, p, true)),
	}

	lines = append(lines, "", p.Header("Status summary:"))
	lines = append(lines, tallyLines(res.OldTally, res.NewTally, p)...)

	lines = append(lines, "", p.Header("Summary:"))
	lines = append(lines,
		"  New: "+colorCount(res.Counts.Added, p.Good),
		"  Removed: "+colorCount(res.Counts.Removed, p.Bad),
		fmt.Sprintf("  Unchanged: %d", res.Counts.Unchanged),
		"  Regressions: "+colorCount(res.Counts.Regressed, p.Bad),
		"  Improvements: "+colorCount(res.Counts.Improved, p.Good),
		"  Lateral: "+colorCount(res.Counts.Lateral, p.Warn),
	)

	if opts.ShowSubtests {
		sc := res.SubtestCounts
		lines = append(lines, "", p.Header("Subtest summary:"),
			fmt.Sprintf("  New: %d  Removed: %d  Unchanged: %d  Regressions: %d  Improvements: %d  Lateral: %d",
				sc.Added, sc.Removed, sc.Unchanged, sc.Regressed, sc.Improved, sc.Lateral))
	}

	level := opts.DetailLevel

	if level == DetailNew || level == DetailAll {
		lines = section(lines, "New", res.Added, opts, func(e differ.Entry) string {
			return fmt.Sprintf("%s: %s", e.Path, statusText(e.New, p))
		})
	}

	if level == DetailRemoved || level == DetailAll {
		lines = section(lines, "Removed", res.Removed, opts, func(e differ.Entry) string {
			return fmt.Sprintf("%s: %s", e.Path, statusText(e.Old, p))
		})
	}

	if level == DetailChanges || level == DetailAll {
		regressions, improvements, lateral := splitChanged(res.Changed)

		lines = section(lines, "Regressions", regressions, opts, transitionRenderer(p))
		lines = section(lines, "Improvements", improvements, opts, transitionRenderer(p))
		lines = section(lines, "Lateral changes", lateral, opts, transitionRenderer(p))

		// Unchanged tests carrying subtest diffs are a real signal and get
		// their own section when subtests are in play.
		if opts.ShowSubtests {
			var subtestOnly []differ.Entry
			for _, e := range res.Unchanged {
				if len(e.Subtests) > 0 {
					subtestOnly = append(subtestOnly, e)
				}
			}
			lines = section(lines, "Subtest changes", subtestOnly, opts, func(e differ.Entry) string {
				return fmt.Sprintf("%s: %s", e.Path, statusText(e.New, p))
			})
		}
	}

	return lines
}

// section appends a titled, truncated entry listing. Empty buckets emit
// nothing.
func section(lines []string, title string, entries []differ.Entry, opts Options,
	render func(differ.Entry) string) []string {

	if len(entries) == 0 {
		return lines
	}

	lines = append(lines, "", opts.Palette.Header(title+":"))

	max := opts.MaxDetails
	if max <= 0 || max > len(entries) {
		max = len(entries)
	}

	for _, e := range entries[:max] {
		lines = append(lines, "  "+render(e))
		if opts.ShowSubtests {
			for _, sub := range e.Subtests {
				if sub.Category == differ.CategoryUnchanged {
					continue
				}
				lines = append(lines, "    "+subtestLine(sub, opts.Palette))
			}
		}
	}

	if rest := len(entries) - max; rest > 0 {
		lines = append(lines, fmt.Sprintf("  ... and %d more", rest))
	}

	return lines
}

func splitChanged(changed []differ.Entry) (regressions, improvements, lateral []differ.Entry) {
	for _, e := range changed {
		switch e.Verdict {
		case differ.VerdictRegression:
			regressions = append(regressions, e)
		case differ.VerdictImprovement:
			improvements = append(improvements, e)
		default:
			lateral = append(lateral, e)
		}
	}
	return
}

func transitionRenderer(p Palette) func(differ.Entry) string {
	return func(e differ.Entry) string {
		return fmt.Sprintf("%s: %s -> %s", e.Path, e.Old, statusText(e.New, p))
	}
}

func subtestLine(e differ.Entry, p Palette) string {
	switch e.Category {
	case differ.CategoryAdded:
		return fmt.Sprintf("%s: %s", e.Path, statusText(e.New, p))
	case differ.CategoryRemoved:
		return fmt.Sprintf("%s: %s", e.Path, statusText(e.Old, p))
	default:
		return fmt.Sprintf("%s: %s -> %s", e.Path, e.Old, statusText(e.New, p))
	}
}

// tallyLines renders the per-status "old -> new (delta)" rows, ordered by
// rank tier then name across the union of both tallies.
func tallyLines(oldTally, newTally map[wpt.Status]int, p Palette) []string {
	union := make(map[wpt.Status]int, len(oldTally)+len(newTally))
	for s, n := range oldTally {
		union[s] += n
	}
	for s, n := range newTally {
		union[s] += n
	}

	var lines []string
	for _, s := range wpt.SortStatuses(union) {
		lines = append(lines, fmt.Sprintf("  %-10s %5s -> %5s (%s)",
			s,
			humanize.Comma(int64(oldTally[s])),
			humanize.Comma(int64(newTally[s])),
			delta(newTally[s]-oldTally[s], s.Passing(), p)))
	}
	return lines
}

// countChange renders "old -> new (delta)" totals.
func countChange(old, new int, p Palette, positiveGood bool) string {
	return fmt.Sprintf("%s -> %s (%s)",
		humanize.Comma(int64(old)),
		humanize.Comma(int64(new)),
		delta(new-old, positiveGood, p))
}

// delta renders a signed difference, colored good or bad depending on
// whether growth is desirable for the value being counted.
func delta(value int, positiveGood bool, p Palette) string {
	if value == 0 {
		return "0"
	}
	s := fmt.Sprintf("%+d", value)
	if (value > 0) == positiveGood {
		return p.Good(s)
	}
	return p.Bad(s)
}

func colorCount(n int, style func(string) string) string {
	s := fmt.Sprintf("%d", n)
	if n > 0 {
		return style(s)
	}
	return s
}

func statusText(s wpt.Status, p Palette) string {
	if s.Passing() {
		return p.Good(string(s))
	}
	if _, ranked := s.Rank(); !ranked {
		return p.Warn(string(s))
	}
	return p.Bad(string(s))
}
