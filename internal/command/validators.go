// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strconv"

	"github.com/wptdiff/wptdiff/internal/reporter"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// DetailLevelValidator rejects any value outside the reporter's detail
// level vocabulary.
func DetailLevelValidator(value any) error {
	for _, v := range reporter.DetailLevels {
		if v == value {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", reporter.DetailLevels)
}

// MaxDetailsValidator accepts a positive integer or the literal "all".
func MaxDetailsValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a positive integer or \"all\"")
	}
	if s == "all" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 1 {
		return fmt.Errorf("must be a positive integer or \"all\"")
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}
