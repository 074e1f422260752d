package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// Catalog is what a registry holds, as needed to draw it.
type Catalog struct {
	Templates []domain.Template
	Behaviors []domain.Behavior
	Commands  []domain.CommandInfo
}

// GenerateMermaid produces a Mermaid flowchart of the catalog.
// It applies semantic styling:
// - Template: [Rectangle]
// - Behavior: [[Subroutine]]
// - Command: [/Parallelogram/]
// Each template points at the behaviors it attaches, labelled with their triggers.
// An attachment to an unregistered behavior is drawn dotted and styled as missing.
func GenerateMermaid(c Catalog) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	known := make(map[string]domain.Behavior, len(c.Behaviors))
	for _, b := range c.Behaviors {
		known[b.ID] = b
		fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", behaviorNode(b.ID), b.ID)
	}

	var missing []string
	for _, t := range c.Templates {
		safeID := templateNode(t.ID)
		label := t.ID
		if len(t.Tags) > 0 {
			label = fmt.Sprintf("%s <br/> %s", t.ID, strings.Join(t.Tags, ", "))
		}
		fmt.Fprintf(&sb, "    %s[\"%s\"]\n", safeID, label)

		for _, id := range t.Behaviors {
			b, ok := known[id]
			if !ok {
				if !slices.Contains(missing, id) {
					missing = append(missing, id)
					fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", behaviorNode(id), id)
				}
				fmt.Fprintf(&sb, "    %s -.-> %s\n", safeID, behaviorNode(id))
				continue
			}
			if len(b.Triggers) == 0 {
				fmt.Fprintf(&sb, "    %s --> %s\n", safeID, behaviorNode(id))
				continue
			}
			fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n", safeID, strings.Join(b.Triggers, ", "), behaviorNode(id))
		}
	}

	for _, cmd := range c.Commands {
		fmt.Fprintf(&sb, "    %s[/\"%s\"/]\n", commandNode(cmd.ID), cmd.ID)
	}

	if len(missing) > 0 {
		sb.WriteString("\n    classDef missing fill:#fee2e2,stroke:#b91c1c,stroke-dasharray:4,color:#000;\n")
		for _, id := range missing {
			fmt.Fprintf(&sb, "    class %s missing;\n", behaviorNode(id))
		}
	}

	return sb.String()
}

// Node ids are prefixed so a template and a behavior may share an id.
func templateNode(id string) string { return "t_" + sanitizeMermaidID(id) }
func behaviorNode(id string) string { return "b_" + sanitizeMermaidID(id) }
func commandNode(id string) string  { return "c_" + sanitizeMermaidID(id) }

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", "#", "_", " ", "_")
	return r.Replace(id)
}
