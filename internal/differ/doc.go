// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ reconciles two WPT report snapshots by test path and buckets
// every test and subtest into the Added/Removed/Unchanged/Changed taxonomy,
// classifying changes as regressions, improvements or lateral moves via the
// status rank table.
package differ
