// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"sort"

	"github.com/wptdiff/wptdiff/internal/log"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

// Category is the four-way bucket a path lands in.
type Category string

const (
	CategoryAdded     Category = "added"
	CategoryRemoved   Category = "removed"
	CategoryUnchanged Category = "unchanged"
	CategoryChanged   Category = "changed"
)

// Verdict refines a Changed entry by the status rank table.
type Verdict string

const (
	VerdictRegression  Verdict = "regression"
	VerdictImprovement Verdict = "improvement"
	VerdictLateral     Verdict = "lateral"
)

// Entry describes how a single test or subtest moved between the two
// snapshots. Old is unset for Added entries and New for Removed ones.
// Subtests holds subtest-level entries (one level deep, never recursive).
type Entry struct {
	Path     string     `json:"path" yaml:"path"`
	Category Category   `json:"category" yaml:"category"`
	Old      wpt.Status `json:"old,omitempty" yaml:"old,omitempty"`
	New      wpt.Status `json:"new,omitempty" yaml:"new,omitempty"`
	Verdict  Verdict    `json:"verdict,omitempty" yaml:"verdict,omitempty"`
	Subtests []Entry    `json:"subtests,omitempty" yaml:"subtests,omitempty"`
}

// Options controls which entries a diff produces.
type Options struct {
	IncludeSubtests bool
	FailuresOnly    bool
}

// Counts summarizes one classification level. Regressed, Improved and
// Lateral partition the Changed bucket.
type Counts struct {
	Added     int `json:"added" yaml:"added"`
	Removed   int `json:"removed" yaml:"removed"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Regressed int `json:"regressed" yaml:"regressed"`
	Improved  int `json:"improved" yaml:"improved"`
	Lateral   int `json:"lateral" yaml:"lateral"`
}

// Changed returns the total size of the Changed bucket.
func (c Counts) Changed() int {
	return c.Regressed + c.Improved + c.Lateral
}

// Result is the immutable outcome of one diff run. Entry slices are ordered
// lexicographically by path. Counts reflect the full classification; when
// FailuresOnly is set the entry slices are additionally trimmed to entries
// whose new status is non-passing.
type Result struct {
	Added     []Entry `json:"added,omitempty" yaml:"added,omitempty"`
	Removed   []Entry `json:"removed,omitempty" yaml:"removed,omitempty"`
	Unchanged []Entry `json:"unchanged,omitempty" yaml:"unchanged,omitempty"`
	Changed   []Entry `json:"changed,omitempty" yaml:"changed,omitempty"`

	Counts        Counts `json:"counts" yaml:"counts"`
	SubtestCounts Counts `json:"subtestCounts,omitempty" yaml:"subtestCounts,omitempty"`

	OldTotal int `json:"oldTotal" yaml:"oldTotal"`
	NewTotal int `json:"newTotal" yaml:"newTotal"`

	OldTally map[wpt.Status]int `json:"oldTally,omitempty" yaml:"oldTally,omitempty"`
	NewTally map[wpt.Status]int `json:"newTally,omitempty" yaml:"newTally,omitempty"`
}

// Diff classifies every test path present in either snapshot. It is a pure
// function of its inputs; neither report is modified.
func Diff(old, new *wpt.Report, opts Options) *Result {
	res := &Result{
		OldTotal: old.TotalTests(),
		NewTotal: new.TotalTests(),
		OldTally: old.StatusTally(),
		NewTally: new.StatusTally(),
	}

	for _, path := range unionPaths(old, new) {
		oldRes, inOld := old.Results[path]
		newRes, inNew := new.Results[path]

		switch {
		case !inOld:
			entry := Entry{Path: path, Category: CategoryAdded, New: newRes.Status}
			if opts.IncludeSubtests {
				entry.Subtests = inheritSubtests(newRes.Subtests, CategoryAdded, &res.SubtestCounts)
			}
			res.Counts.Added++
			res.Added = appendEntry(res.Added, entry, opts)

		case !inNew:
			entry := Entry{Path: path, Category: CategoryRemoved, Old: oldRes.Status}
			if opts.IncludeSubtests {
				entry.Subtests = inheritSubtests(oldRes.Subtests, CategoryRemoved, &res.SubtestCounts)
			}
			res.Counts.Removed++
			res.Removed = appendEntry(res.Removed, entry, opts)

		case oldRes.Status == newRes.Status:
			entry := Entry{
				Path:     path,
				Category: CategoryUnchanged,
				Old:      oldRes.Status,
				New:      newRes.Status,
			}
			if opts.IncludeSubtests {
				// A differing subtest under an unchanged parent is a real
				// signal, so the parent surfaces it even though the parent
				// itself stays in the Unchanged bucket.
				entry.Subtests = diffSubtests(oldRes.Subtests, newRes.Subtests, false, &res.SubtestCounts)
			}
			res.Counts.Unchanged++
			res.Unchanged = appendEntry(res.Unchanged, entry, opts)

		default:
			verdict := Classify(oldRes.Status, newRes.Status)
			entry := Entry{
				Path:     path,
				Category: CategoryChanged,
				Old:      oldRes.Status,
				New:      newRes.Status,
				Verdict:  verdict,
			}
			if opts.IncludeSubtests {
				entry.Subtests = diffSubtests(oldRes.Subtests, newRes.Subtests, true, &res.SubtestCounts)
			}
			switch verdict {
			case VerdictRegression:
				res.Counts.Regressed++
			case VerdictImprovement:
				res.Counts.Improved++
			default:
				res.Counts.Lateral++
			}
			res.Changed = appendEntry(res.Changed, entry, opts)
		}
	}

	log.Debugf("diff complete: added=%d removed=%d unchanged=%d changed=%d",
		res.Counts.Added, res.Counts.Removed, res.Counts.Unchanged, res.Counts.Changed())

	return res
}

// Classify applies the rank table to a pair of differing statuses. Moving to
// a lower tier is an improvement, to a higher tier a regression. Transitions
// within one tier, or to or from an unranked status (SKIP or anything outside
// the vocabulary), are lateral.
func Classify(old, new wpt.Status) Verdict {
	oldRank, oldOK := old.Rank()
	newRank, newOK := new.Rank()

	if !oldOK || !newOK {
		return VerdictLateral
	}

	switch {
	case oldRank > newRank:
		return VerdictImprovement
	case oldRank < newRank:
		return VerdictRegression
	default:
		return VerdictLateral
	}
}

// diffSubtests runs the four-way classification over the union of subtest
// names. When keepUnchanged is false only differing subtests are attached,
// which is what unchanged parents surface.
func diffSubtests(old, new map[string]wpt.Subtest, keepUnchanged bool, counts *Counts) []Entry {
	names := make(map[string]struct{}, len(old)+len(new))
	for n := range old {
		names[n] = struct{}{}
	}
	for n := range new {
		names[n] = struct{}{}
	}

	var entries []Entry
	for name := range names {
		oldSub, inOld := old[name]
		newSub, inNew := new[name]

		var entry Entry
		switch {
		case !inOld:
			entry = Entry{Path: name, Category: CategoryAdded, New: newSub.Status}
			counts.Added++
		case !inNew:
			entry = Entry{Path: name, Category: CategoryRemoved, Old: oldSub.Status}
			counts.Removed++
		case oldSub.Status == newSub.Status:
			counts.Unchanged++
			if !keepUnchanged {
				continue
			}
			entry = Entry{Path: name, Category: CategoryUnchanged, Old: oldSub.Status, New: newSub.Status}
		default:
			verdict := Classify(oldSub.Status, newSub.Status)
			entry = Entry{
				Path:     name,
				Category: CategoryChanged,
				Old:      oldSub.Status,
				New:      newSub.Status,
				Verdict:  verdict,
			}
			switch verdict {
			case VerdictRegression:
				counts.Regressed++
			case VerdictImprovement:
				counts.Improved++
			default:
				counts.Lateral++
			}
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// inheritSubtests buckets every subtest of an added or removed parent into
// the parent's category.
func inheritSubtests(subs map[string]wpt.Subtest, cat Category, counts *Counts) []Entry {
	var entries []Entry
	for name, sub := range subs {
		entry := Entry{Path: name, Category: cat}
		if cat == CategoryAdded {
			entry.New = sub.Status
			counts.Added++
		} else {
			entry.Old = sub.Status
			counts.Removed++
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}

// appendEntry applies the failures-only trim before an entry joins its
// bucket. Counts are taken beforehand, so the summary always reflects the
// full classification.
func appendEntry(bucket []Entry, entry Entry, opts Options) []Entry {
	if !opts.FailuresOnly {
		return append(bucket, entry)
	}

	if len(entry.Subtests) > 0 {
		var kept []Entry
		for _, sub := range entry.Subtests {
			if sub.Category != CategoryRemoved && sub.New.Passing() {
				continue
			}
			kept = append(kept, sub)
		}
		entry.Subtests = kept
	}

	// A removed entry has no new status and therefore never indicates
	// success, so it is retained. A parent that passes is kept only while
	// it still carries failing subtests.
	if entry.Category != CategoryRemoved && entry.New.Passing() && len(entry.Subtests) == 0 {
		return bucket
	}

	return append(bucket, entry)
}

func unionPaths(old, new *wpt.Report) []string {
	seen := make(map[string]struct{}, len(old.Results)+len(new.Results))
	for p := range old.Results {
		seen[p] = struct{}{}
	}
	for p := range new.Results {
		seen[p] = struct{}{}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
