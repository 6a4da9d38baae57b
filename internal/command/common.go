// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/wptdiff/wptdiff/internal/meta"
	"github.com/wptdiff/wptdiff/internal/reporter"
)

// GetMeta returns the Meta carried in the command metadata.
func GetMeta(cmd *cli.Command) meta.Meta {
	return cmd.Metadata["meta"].(meta.Meta)
}

// MaxDetails resolves the --max-details flag to an entry cap, where 0 means
// unlimited. The validator has already rejected anything else.
func MaxDetails(cmd *cli.Command) int {
	v := cmd.String("max-details")
	if v == "all" {
		return 0
	}
	n, _ := strconv.Atoi(v)
	return n
}

// BuildReporterOptions assembles reporter options from the common flags.
func BuildReporterOptions(cmd *cli.Command) reporter.Options {
	opts := reporter.Options{
		DetailLevel:  cmd.String("detail-level"),
		MaxDetails:   MaxDetails(cmd),
		ShowSubtests: cmd.Bool("show-subtests"),
		FailuresOnly: cmd.Bool("failures-only"),
		Palette:      reporter.Plain(),
	}
	if cmd.Bool("color") {
		opts.Palette = reporter.Colored()
	}
	return opts
}
