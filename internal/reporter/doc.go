// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package reporter renders diff results and single-report summaries as
// ordered text lines. Rendering is pure: styling is injected through a
// Palette so callers decide whether output is colored.
package reporter
