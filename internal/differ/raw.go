// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/wptdiff/wptdiff/internal/log"
)

// RawDiff compares the two raw report documents as generic JSON and writes
// the ascii-formatted delta to w. This bypasses the WPT classification
// entirely and is useful for spotting metadata drift (run info, timestamps)
// between two reports.
func RawDiff(old, new []byte, coloring bool, w io.Writer) error {
	log.Debugf("raw diff: len(old)=%d len(new)=%d", len(old), len(new))

	if len(old) == 0 || len(new) == 0 {
		return nil
	}

	delta, err := gojsondiff.New().Compare(old, new)
	if err != nil {
		return fmt.Errorf("failed to compare reports: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The reports are identical.")
		return nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(old, &jdoc); err != nil {
		return fmt.Errorf("failed to unmarshal report: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	diffString, err := formatter.NewAsciiFormatter(jdoc, config).Format(delta)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, diffString)
	return nil
}
