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
	"github.com/wptdiff/wptdiff/internal/differ"
	"github.com/wptdiff/wptdiff/internal/meta"
	"github.com/wptdiff/wptdiff/internal/reporter"
	"github.com/wptdiff/wptdiff/internal/wpt"
)

// diffCommandAction is the action handler for the "diff" subcommand. It loads
// the two report snapshots, classifies every test path, and renders the
// result per the common flags.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	config.Config.Namespace = "diff"

	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("expected two report files, got %d", len(args))
	}

	oldRpt, err := wpt.Load(args[0])
	if err != nil {
		return err
	}
	newRpt, err := wpt.Load(args[1])
	if err != nil {
		return err
	}

	// Raw mode compares the documents as generic JSON and skips the
	// classification entirely.
	if cmd.String("output") == "raw" {
		return differ.RawDiff(oldRpt.Raw(), newRpt.Raw(), cmd.Bool("color"), os.Stdout)
	}

	res := differ.Diff(oldRpt, newRpt, differ.Options{
		IncludeSubtests: cmd.Bool("show-subtests"),
		FailuresOnly:    cmd.Bool("failures-only"),
	})

	if cmd.Bool("tui") {
		return differ.BrowseEntries(res)
	}

	switch cmd.String("output") {
	case "json":
		jsonOutput, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal diff result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(jsonOutput))
	case "yaml":
		yamlOutput, err := yamlv2.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal diff result: %w", err)
		}
		os.Stdout.Write(yamlOutput)
	default:
		for _, line := range reporter.Render(res, BuildReporterOptions(cmd)) {
			fmt.Fprintln(os.Stdout, line)
		}
	}

	return nil
}

// diffCommandBuilder constructs the "diff" subcommand.
func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare two WPT reports",
		UsageText: "wptdiff diff <old.json> <new.json> [options]",
		Metadata:  map[string]any{"meta": meta},
		Flags: append(NewGlobalFlags("diff"), []cli.Flag{
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "browse the differences interactively",
				Value: false,
			},
		}...),
		Action: diffCommandAction,
	}
}
