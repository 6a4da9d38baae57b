// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wpt

import (
	"sort"
	"time"
)

// Subtest is a single assertion within one test file's run.
type Subtest struct {
	Name    string `json:"name" yaml:"name"`
	Status  Status `json:"status" yaml:"status"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result is the outcome of one test file, with optional per-subtest outcomes
// keyed by subtest name.
type Result struct {
	Test     string             `json:"test" yaml:"test"`
	Status   Status             `json:"status" yaml:"status"`
	Subtests map[string]Subtest `json:"subtests,omitempty" yaml:"subtests,omitempty"`
}

// Report is one loaded wptreport snapshot: a mapping from test path to its
// Result plus optional run timestamps. Treated as immutable once loaded.
type Report struct {
	Source    string
	Results   map[string]Result
	TimeStart time.Time
	TimeEnd   time.Time

	raw []byte
}

// Raw returns the original document bytes. Used by the raw diff mode.
func (r *Report) Raw() []byte {
	return r.raw
}

// TotalTests returns the number of tests in the snapshot.
func (r *Report) TotalTests() int {
	return len(r.Results)
}

// TotalSubtests returns the number of subtests across all tests.
func (r *Report) TotalSubtests() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Subtests)
	}
	return n
}

// StatusTally returns per-status counts at the test level.
func (r *Report) StatusTally() map[Status]int {
	tally := make(map[Status]int)
	for _, res := range r.Results {
		tally[res.Status]++
	}
	return tally
}

// SubtestStatusTally returns per-status counts at the subtest level.
func (r *Report) SubtestStatusTally() map[Status]int {
	tally := make(map[Status]int)
	for _, res := range r.Results {
		for _, sub := range res.Subtests {
			tally[sub.Status]++
		}
	}
	return tally
}

// Paths returns the test paths in lexicographic order.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Results))
	for p := range r.Results {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SortStatuses orders statuses by rank tier then name, matching how summary
// sections list them.
func SortStatuses(tally map[Status]int) []Status {
	statuses := make([]Status, 0, len(tally))
	for s := range tally {
		statuses = append(statuses, s)
	}
	sort.Slice(statuses, func(i, j int) bool {
		ri, _ := statuses[i].Rank()
		rj, _ := statuses[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return statuses[i] < statuses[j]
	})
	return statuses
}
