package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// PaletteMarkdown lists commands the way the command palette shows them.
func PaletteMarkdown(cmds []domain.CommandInfo) string {
	if len(cmds) == 0 {
		return "_No commands registered._\n"
	}
	var sb strings.Builder
	sb.WriteString("## Commands\n\n")
	for _, c := range cmds {
		if c.Description == "" {
			fmt.Fprintf(&sb, "- `%s`\n", c.ID)
			continue
		}
		fmt.Fprintf(&sb, "- `%s` %s\n", c.ID, c.Description)
	}
	return sb.String()
}

// TabsMarkdown lists open tabs, marking the focused one.
func TabsMarkdown(tabs []*domain.Object, focused string) string {
	if len(tabs) == 0 {
		return "_No open tabs._\n"
	}
	var sb strings.Builder
	sb.WriteString("## Tabs\n\n")
	for i, o := range tabs {
		mark := ""
		if o.ID() == focused {
			mark = " **(focused)**"
		}
		fmt.Fprintf(&sb, "%d. `%s`%s\n", i+1, o.ID(), mark)
	}
	return sb.String()
}
