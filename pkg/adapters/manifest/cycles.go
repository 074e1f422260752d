package manifest

import (
	"fmt"
	"slices"
	"strings"
)

// checkCycles rejects declarations that would recurse forever once dispatched:
// commands that end up invoking themselves, and behaviors on the same template
// whose raise effects lead back to a trigger that started the chain.
func (m *Manifest) checkCycles() error {
	invokes := map[string][]string{}
	for _, c := range m.Commands {
		if c.Action.Invoke != "" {
			invokes[c.ID] = append(invokes[c.ID], c.Action.Invoke)
		}
	}
	if cycle := findCycle(invokes); cycle != nil {
		return fmt.Errorf("command %s: invoke cycle %s", cycle[0], strings.Join(cycle, " -> "))
	}

	declared := make(map[string]Behavior, len(m.Behaviors))
	for _, b := range m.Behaviors {
		declared[b.ID] = b
	}
	for _, t := range m.Templates {
		raises := map[string][]string{}
		for _, id := range t.Behaviors {
			b, ok := declared[id]
			if !ok || b.Raise == "" {
				continue
			}
			for _, trigger := range b.Triggers {
				raises[trigger] = append(raises[trigger], b.Raise)
			}
		}
		if cycle := findCycle(raises); cycle != nil {
			return fmt.Errorf("template %s: raise cycle %s", t.ID, strings.Join(cycle, " -> "))
		}
	}
	return nil
}

// findCycle returns the first cycle found in edges as a path that starts and
// ends on the same node, or nil. Nodes are visited in sorted order.
func findCycle(edges map[string][]string) []string {
	const (
		unseen = iota
		open
		done
	)
	state := map[string]int{}
	var path []string

	var visit func(n string) []string
	visit = func(n string) []string {
		switch state[n] {
		case open:
			i := slices.Index(path, n)
			return append(slices.Clone(path[i:]), n)
		case done:
			return nil
		}
		state[n] = open
		path = append(path, n)
		for _, next := range edges[n] {
			if cycle := visit(next); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[n] = done
		return nil
	}

	nodes := make([]string, 0, len(edges))
	for n := range edges {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	for _, n := range nodes {
		if cycle := visit(n); cycle != nil {
			return cycle
		}
	}
	return nil
}
