// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/wptdiff/wptdiff/internal/config"
)

// NewGlobalFlags constructs the flag set shared by the diff and report
// commands, namespaced to the given command for config file lookups.
func NewGlobalFlags(ns string) []cli.Flag {
	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "show-subtests",
			Usage: "include subtest information in the output",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "failures-only",
			Usage: "only list entries whose new status is failing",
			Value: false,
		},
		NewDetailLevelFlag(ns),
		NewMaxDetailsFlag(ns),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}

	return flags
}

// NewDetailLevelFlag constructs the "detail-level" flag, sourcing values from
// the environment and the config file when one is present.
func NewDetailLevelFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "detail-level",
		Aliases: []string{"d"},
		Usage:   "level of detail to show (summary, new, removed, changes, all)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("WPTDIFF_DETAIL_LEVEL"),
		),
		Value: "summary",
		Validator: func(value string) error {
			return FlagValidators(value, DetailLevelValidator)
		},
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NewMaxDetailsFlag constructs the "max-details" flag. The value is a
// positive integer or the literal "all".
func NewMaxDetailsFlag(ns string) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "max-details",
		Aliases: []string{"m"},
		Usage:   "maximum entries listed per bucket, or \"all\"",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("WPTDIFF_MAX_DETAILS"),
		),
		Value: "3",
		Validator: func(value string) error {
			return FlagValidators(value, MaxDetailsValidator)
		},
	}

	return NameSpacedValueChainFlagFromConfigFile(ns, config.Config.Source, flag)
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain. A missing config file adds
// nothing.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
