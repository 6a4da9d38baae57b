// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package wpt

import (
	"fmt"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/wptdiff/wptdiff/internal/log"
)

// Load reads and parses one wptreport JSON file. Errors always carry the
// offending path so the caller can surface it directly.
func Load(path string) (*Report, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	rpt, err := Parse(doc, path)
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded report: source=%s tests=%d subtests=%d",
		path, rpt.TotalTests(), rpt.TotalSubtests())

	return rpt, nil
}

// Parse builds a Report from raw wptreport JSON. Only the "results" array is
// required; subtests, messages and timestamps are optional and tolerated when
// missing. Duplicate test paths keep the last occurrence, matching wptrunner
// retry output.
func Parse(doc []byte, source string) (*Report, error) {
	if !gjson.ValidBytes(doc) {
		return nil, fmt.Errorf("malformed report %s: invalid JSON", source)
	}

	root := gjson.ParseBytes(doc)
	if !root.IsObject() {
		return nil, fmt.Errorf("malformed report %s: document is not an object", source)
	}

	rpt := &Report{
		Source:  source,
		Results: make(map[string]Result),
		raw:     doc,
	}

	for _, res := range root.Get("results").Array() {
		test := res.Get("test").String()
		if test == "" {
			log.Warnf("skipping result with no test path in %s", source)
			continue
		}

		result := Result{
			Test:   test,
			Status: Status(res.Get("status").String()),
		}

		if subs := res.Get("subtests"); subs.Exists() {
			for _, sub := range subs.Array() {
				name := sub.Get("name").String()
				if name == "" {
					continue
				}
				result.Subtests = ensure(result.Subtests)
				result.Subtests[name] = Subtest{
					Name:    name,
					Status:  Status(sub.Get("status").String()),
					Message: sub.Get("message").String(),
				}
			}
		}

		rpt.Results[test] = result
	}

	// wptrunner writes epoch milliseconds.
	if ts := root.Get("time_start"); ts.Exists() {
		rpt.TimeStart = time.UnixMilli(ts.Int())
	}
	if te := root.Get("time_end"); te.Exists() {
		rpt.TimeEnd = time.UnixMilli(te.Int())
	}

	return rpt, nil
}

func ensure(m map[string]Subtest) map[string]Subtest {
	if m == nil {
		return make(map[string]Subtest)
	}
	return m
}
