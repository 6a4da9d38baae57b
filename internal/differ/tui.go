// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BrowseEntries runs an interactive browser over the diff's non-unchanged
// entries. Up/down moves the cursor, space expands subtest detail for the
// highlighted test, q or escape quits.
func BrowseEntries(res *Result) error {
	items := browseItems(res)
	if len(items) == 0 {
		fmt.Println("No differences to browse.")
		return nil
	}

	_, err := tea.NewProgram(model{items: items, expanded: map[int]bool{}}).Run()
	return err
}

// browseItems flattens the interesting buckets into display order: changed
// first, then added, removed, and unchanged parents carrying subtest diffs.
func browseItems(res *Result) []Entry {
	var items []Entry
	items = append(items, res.Changed...)
	items = append(items, res.Added...)
	items = append(items, res.Removed...)
	for _, e := range res.Unchanged {
		if len(e.Subtests) > 0 {
			items = append(items, e)
		}
	}
	return items
}

type model struct {
	items    []Entry
	cursor   int
	expanded map[int]bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ", "enter":
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString("Result changes:\n\n")

	for i, e := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		mark := " "
		if len(e.Subtests) > 0 {
			mark = "+"
			if m.expanded[i] {
				mark = "-"
			}
		}

		fmt.Fprintf(&b, "%s %s %-11s %s\n", cursor, mark, label(e), transition(e))

		if m.expanded[i] {
			for _, sub := range e.Subtests {
				fmt.Fprintf(&b, "      %-11s %s\n", label(sub), transition(sub))
			}
		}
	}

	b.WriteString("\nUP/DOWN: move, SPACE: expand subtests, Q/ESCAPE: quit\n")
	return b.String()
}

func label(e Entry) string {
	if e.Category == CategoryChanged {
		return string(e.Verdict)
	}
	return string(e.Category)
}

func transition(e Entry) string {
	switch e.Category {
	case CategoryAdded:
		return fmt.Sprintf("%s: %s", e.Path, e.New)
	case CategoryRemoved:
		return fmt.Sprintf("%s: %s", e.Path, e.Old)
	default:
		return fmt.Sprintf("%s: %s -> %s", e.Path, e.Old, e.New)
	}
}
