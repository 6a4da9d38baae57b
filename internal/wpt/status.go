// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wpt

// Status is a single WPT outcome. Values outside the known vocabulary are
// carried as their literal string so they still participate in equality
// checks; they just never rank.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusOK      Status = "OK"
	StatusFail    Status = "FAIL"
	StatusError   Status = "ERROR"
	StatusTimeout Status = "TIMEOUT"
	StatusCrash   Status = "CRASH"
	StatusSkip    Status = "SKIP"
)

// unrankedTier sorts unranked statuses after every ranked one.
const unrankedTier = 3

// statusRank orders statuses from best to worst. FAIL, TIMEOUT, ERROR and
// CRASH share a tier, so transitions among them are lateral rather than
// regressions or improvements. SKIP and out-of-vocabulary values are
// deliberately absent: a transition to or from an unranked status is never a
// regression or an improvement.
var statusRank = map[Status]int{
	StatusPass:    0,
	StatusOK:      1,
	StatusFail:    2,
	StatusTimeout: 2,
	StatusError:   2,
	StatusCrash:   2,
}

// Rank returns the status tier and whether the status is ranked at all.
// Unranked statuses report the sentinel tier used for display ordering.
func (s Status) Rank() (int, bool) {
	r, ok := statusRank[s]
	if !ok {
		return unrankedTier, false
	}
	return r, true
}

// Passing reports whether the status counts as a successful outcome.
func (s Status) Passing() bool {
	return s == StatusPass || s == StatusOK
}
