// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package wpt defines the Web Platform Test report data model: the status
// vocabulary with its rank table, per-test results with optional subtests,
// and the loader that turns a wptreport JSON document into an immutable
// in-memory snapshot.
package wpt
