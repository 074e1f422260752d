package registry

import (
	"context"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/aretw0/arbor/pkg/domain"
)

// Commands maps command ids to executable commands.
type Commands struct {
	t *table[domain.Command]
}

// NewCommands creates an empty command registry.
func NewCommands() *Commands {
	return &Commands{t: newTable[domain.Command]()}
}

// Register adds a command to the registry.
// If a command with the same id exists, it is overwritten and the old exec becomes unreachable.
func (r *Commands) Register(cmd domain.Command) (bool, error) {
	if cmd.ID == "" {
		return false, fmt.Errorf("%w: missing id", domain.ErrInvalidCommand)
	}
	if cmd.Exec == nil {
		return false, fmt.Errorf("%w: %s has no exec", domain.ErrInvalidCommand, cmd.ID)
	}
	return r.t.put(cmd.ID, cmd), nil
}

// Get looks up a command by id.
func (r *Commands) Get(id string) (domain.Command, bool) {
	return r.t.get(id)
}

// Invoke looks up a command by id and executes it.
// Returns domain.ErrUnknownCommand if the id is not registered.
func (r *Commands) Invoke(ctx context.Context, id string, args ...any) error {
	cmd, ok := r.t.get(id)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCommand, id)
	}
	if err := cmd.Exec(ctx, args...); err != nil {
		return fmt.Errorf("command %s: %w", id, err)
	}
	return nil
}

// List returns the id and description of every command, ordered by id.
func (r *Commands) List() []domain.CommandInfo {
	cmds := r.t.values()
	out := make([]domain.CommandInfo, 0, len(cmds))
	for _, c := range cmds {
		out = append(out, c.Info())
	}
	return out
}

// Suggest returns up to max registered ids closest to id by edit distance.
// Ids further away than half of id's length are not considered a match.
func (r *Commands) Suggest(id string, max int) []string {
	if max <= 0 {
		return nil
	}
	type candidate struct {
		id   string
		dist int
	}
	limit := len(id)/2 + 1
	var found []candidate
	for _, known := range r.t.ids() {
		d := levenshtein.ComputeDistance(id, known)
		if d <= limit {
			found = append(found, candidate{known, d})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]string, 0, max)
	for i := 0; i < len(found) && i < max; i++ {
		out = append(out, found[i].id)
	}
	return out
}

// Len returns the number of registered commands.
func (r *Commands) Len() int {
	return r.t.len()
}
