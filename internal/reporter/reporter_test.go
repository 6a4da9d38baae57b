// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package reporter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wptdiff/wptdiff/internal/differ"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

func snapshot(results map[string]wpt.Status) *wpt.Report {
	rpt := &wpt.Report{Results: make(map[string]wpt.Result)}
	for path, status := range results {
		rpt.Results[path] = wpt.Result{Test: path, Status: status}
	}
	return rpt
}

func diffOf(old, new map[string]wpt.Status, opts differ.Options) *differ.Result {
	return differ.Diff(snapshot(old), snapshot(new), opts)
}

func TestRender_SummaryAlwaysPresent(t *testing.T) {
	res := diffOf(
		map[string]wpt.Status{"a": wpt.StatusPass},
		map[string]wpt.Status{"a": wpt.StatusFail, "b": wpt.StatusPass},
		differ.Options{})

	lines := Render(res, Options{})
	text := strings.Join(lines, "\n")

	assert.Contains(t, text, "Tests: 1 -> 2 (+1)")
	assert.Contains(t, text, "New: 1")
	assert.Contains(t, text, "Removed: 0")
	assert.Contains(t, text, "Unchanged: 0")
	assert.Contains(t, text, "Regressions: 1")

	// Summary level emits no per-entry detail.
	assert.NotContains(t, text, "a: PASS -> FAIL")
}

func TestRender_StatusSummary(t *testing.T) {
	res := diffOf(
		map[string]wpt.Status{"a": wpt.StatusPass, "b": wpt.StatusPass, "c": wpt.StatusFail},
		map[string]wpt.Status{"a": wpt.StatusPass, "b": wpt.StatusFail, "c": wpt.StatusFail},
		differ.Options{})

	text := strings.Join(Render(res, Options{}), "\n")

	assert.Contains(t, text, "Status summary:")
	assert.Regexp(t, `PASS\s+2 ->\s+1 \(-1\)`, text)
	assert.Regexp(t, `FAIL\s+1 ->\s+2 \(\+1\)`, text)
}

func TestRender_DetailLevels(t *testing.T) {
	old := map[string]wpt.Status{"changed": wpt.StatusPass, "removed": wpt.StatusFail}
	new := map[string]wpt.Status{"changed": wpt.StatusFail, "added": wpt.StatusCrash}

	tests := []struct {
		level       string
		contains    []string
		notContains []string
	}{
		{
			level:       DetailSummary,
			notContains: []string{"New:", "Removed:", "Regressions:"},
		},
		{
			level:       DetailNew,
			contains:    []string{"New:", "  added: CRASH"},
			notContains: []string{"  removed: FAIL", "  changed: PASS -> FAIL"},
		},
		{
			level:       DetailRemoved,
			contains:    []string{"Removed:", "  removed: FAIL"},
			notContains: []string{"  added: CRASH", "  changed: PASS -> FAIL"},
		},
		{
			level:       DetailChanges,
			contains:    []string{"Regressions:", "  changed: PASS -> FAIL"},
			notContains: []string{"  added: CRASH", "  removed: FAIL"},
		},
		{
			level:    DetailAll,
			contains: []string{"  added: CRASH", "  removed: FAIL", "  changed: PASS -> FAIL"},
		},
	}

	// Section headers are unindented; summary counts are indented, so exact
	// line matching keeps the two apart.
	hasLine := func(lines []string, want string) bool {
		for _, l := range lines {
			if l == want {
				return true
			}
		}
		return false
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			res := diffOf(old, new, differ.Options{})
			lines := Render(res, Options{DetailLevel: tt.level})

			for _, want := range tt.contains {
				assert.True(t, hasLine(lines, want), "missing line %q", want)
			}
			for _, not := range tt.notContains {
				assert.False(t, hasLine(lines, not), "unexpected line %q", not)
			}
		})
	}
}

func TestRender_Truncation(t *testing.T) {
	res := diffOf(
		map[string]wpt.Status{},
		map[string]wpt.Status{"a": wpt.StatusFail, "b": wpt.StatusFail},
		differ.Options{})

	lines := Render(res, Options{DetailLevel: DetailNew, MaxDetails: 1})
	text := strings.Join(lines, "\n")

	assert.Contains(t, text, "a: FAIL")
	assert.NotContains(t, text, "b: FAIL")
	assert.Contains(t, text, "... and 1 more")
}

func TestRender_MaxDetailsZeroShowsAll(t *testing.T) {
	res := diffOf(
		map[string]wpt.Status{},
		map[string]wpt.Status{"a": wpt.StatusFail, "b": wpt.StatusFail, "c": wpt.StatusFail},
		differ.Options{})

	text := strings.Join(Render(res, Options{DetailLevel: DetailNew}), "\n")

	assert.Contains(t, text, "a: FAIL")
	assert.Contains(t, text, "b: FAIL")
	assert.Contains(t, text, "c: FAIL")
	assert.NotContains(t, text, "more")
}

func TestRender_Subtests(t *testing.T) {
	oldRpt := snapshot(map[string]wpt.Status{"t1": wpt.StatusOK})
	newRpt := snapshot(map[string]wpt.Status{"t1": wpt.StatusOK})

	res := oldRpt.Results["t1"]
	res.Subtests = map[string]wpt.Subtest{"s1": {Name: "s1", Status: wpt.StatusPass}}
	oldRpt.Results["t1"] = res

	res = newRpt.Results["t1"]
	res.Subtests = map[string]wpt.Subtest{"s1": {Name: "s1", Status: wpt.StatusFail}}
	newRpt.Results["t1"] = res

	diff := differ.Diff(oldRpt, newRpt, differ.Options{IncludeSubtests: true})

	text := strings.Join(Render(diff, Options{
		DetailLevel:  DetailChanges,
		ShowSubtests: true,
	}), "\n")

	assert.Contains(t, text, "Subtest changes:")
	assert.Contains(t, text, "  t1: OK")
	assert.Contains(t, text, "    s1: PASS -> FAIL")
	assert.Contains(t, text, "Subtest summary:")

	// Without ShowSubtests the parent stays silent: it is unchanged at the
	// test level and no subtest sections render.
	text = strings.Join(Render(diff, Options{DetailLevel: DetailChanges}), "\n")
	assert.NotContains(t, text, "s1")
}

func TestRender_ColoredPaletteWrapsStatuses(t *testing.T) {
	res := diffOf(
		map[string]wpt.Status{"a": wpt.StatusPass},
		map[string]wpt.Status{"a": wpt.StatusFail},
		differ.Options{})

	marker := func(tag string) func(string) string {
		return func(s string) string { return "<" + tag + ">" + s + "</" + tag + ">" }
	}
	palette := Palette{
		Header: marker("h"),
		Good:   marker("g"),
		Bad:    marker("b"),
		Warn:   marker("w"),
	}

	text := strings.Join(Render(res, Options{DetailLevel: DetailChanges, Palette: palette}), "\n")

	assert.Contains(t, text, "<h>Regressions:</h>")
	assert.Contains(t, text, "a: PASS -> <b>FAIL</b>")
}

func TestRenderReport(t *testing.T) {
	rpt := snapshot(map[string]wpt.Status{
		"/a.html": wpt.StatusPass,
		"/b.html": wpt.StatusCrash,
		"/c.html": wpt.StatusFail,
	})
	rpt.TimeEnd = time.Now().Add(-2 * time.Hour)

	lines := RenderReport(rpt, Options{DetailLevel: DetailAll, MaxDetails: 2})
	text := strings.Join(lines, "\n")

	assert.Contains(t, text, "Tests: 3")
	assert.Contains(t, text, "run finished 2 hours ago")

	// Worst outcomes lead: CRASH and FAIL share a tier so they order by
	// path, and PASS is cut by max-details.
	assert.Contains(t, text, "/b.html (CRASH)")
	assert.Contains(t, text, "/c.html (FAIL)")
	assert.NotContains(t, text, "/a.html")
	assert.Contains(t, text, "... and 1 more")
}

func TestRenderReport_FailuresOnly(t *testing.T) {
	rpt := snapshot(map[string]wpt.Status{
		"/pass.html": wpt.StatusPass,
		"/fail.html": wpt.StatusFail,
	})

	text := strings.Join(RenderReport(rpt, Options{
		DetailLevel:  DetailAll,
		FailuresOnly: true,
	}), "\n")

	assert.Contains(t, text, "/fail.html (FAIL)")
	assert.NotContains(t, text, "/pass.html")
}

func TestSummarize(t *testing.T) {
	rpt := snapshot(map[string]wpt.Status{
		"/a.html": wpt.StatusPass,
		"/b.html": wpt.StatusFail,
	})
	rpt.Source = "old.json"

	s := Summarize(rpt, false)
	assert.Equal(t, "old.json", s.Source)
	assert.Equal(t, 2, s.Tests)
	assert.Equal(t, 1, s.Tally[wpt.StatusPass])
	assert.Nil(t, s.SubtestTally)
}

func TestTallyTable(t *testing.T) {
	rpt := snapshot(map[string]wpt.Status{
		"/a.html": wpt.StatusPass,
		"/b.html": wpt.StatusFail,
	})

	out := TallyTable(rpt, false, false)

	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "TESTS")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.NotContains(t, out, "SUBTESTS")

	out = TallyTable(rpt, true, false)
	assert.Contains(t, out, "SUBTESTS")
}
