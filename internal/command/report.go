// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	yamlv2 "gopkg.in/yaml.v2"

	"github.com/wptdiff/wptdiff/internal/config"
	"github.com/wptdiff/wptdiff/internal/meta"
	"github.com/wptdiff/wptdiff/internal/reporter"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

// reportCommandAction is the action handler for the "report" subcommand. It
// summarizes a single WPT report: totals, per-status tallies, and a detail
// listing subject to the usual truncation rules.
func reportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "report"

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("expected one report file, got %d", len(args))
	}

	rpt, err := wpt.Load(args[0])
	if err != nil {
		return err
	}

	showSubtests := cmd.Bool("show-subtests")

	switch cmd.String("output") {
	case "raw":
		_, _ = os.Stdout.Write(rpt.Raw())
	case "json":
		jsonOutput, err := json.MarshalIndent(reporter.Summarize(rpt, showSubtests), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yamlv2.Marshal(reporter.Summarize(rpt, showSubtests))
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		os.Stdout.Write(yamlOutput)
	default:
		opts := BuildReporterOptions(cmd)

		for _, line := range reporter.ReportHeader(rpt, opts) {
			fmt.Fprintln(os.Stdout, line)
		}

		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, reporter.TallyTable(rpt, showSubtests, cmd.Bool("color")))

		for _, line := range reporter.ReportDetails(rpt, opts) {
			fmt.Fprintln(os.Stdout, line)
		}
	}

	return nil
}

// reportCommandBuilder constructs the "report" subcommand.
func reportCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "summarize a single WPT report",
		UsageText: "wptdiff report <report.json> [options]",
		Metadata:  map[string]any{"meta": meta},
		Flags:     NewGlobalFlags("report"),
		Action:    reportCommandAction,
	}
}
