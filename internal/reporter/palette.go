// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package reporter

import (
	"os"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/wptdiff/wptdiff/internal/config"
)

// Palette supplies the styling hooks applied to rendered lines. The zero
// behavior (Plain) leaves text untouched so Render stays a pure text
// producer; color is strictly a caller concern.
type Palette struct {
	Header func(string) string
	Good   func(string) string
	Bad    func(string) string
	Warn   func(string) string
}

// Plain returns a palette that applies no styling.
func Plain() Palette {
	id := func(s string) string { return s }
	return Palette{Header: id, Good: id, Bad: id, Warn: id}
}

// Colored returns a lipgloss-backed palette. Colors come from the config
// keys under "colors" when present; otherwise defaults are picked for the
// detected terminal background so output stays readable on both themes.
func Colored() Palette {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) lipgloss.Style {
		if colorCfg, err := config.GetString("colors." + key); err == nil {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(colorCfg))
		}
		if isDark {
			return lipgloss.NewStyle().Foreground(lipgloss.Color(dark))
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(light))
	}

	header := lipgloss.NewStyle().Bold(true)
	good := resolveColor("good", "#007700", "#00d700")
	bad := resolveColor("bad", "#b00000", "#ff5f5f")
	warn := resolveColor("warn", "#b08800", "#f6be00")

	wrap := func(st lipgloss.Style) func(string) string {
		return func(s string) string { return st.Render(s) }
	}

	return Palette{
		Header: wrap(header),
		Good:   wrap(good),
		Bad:    wrap(bad),
		Warn:   wrap(warn),
	}
}
