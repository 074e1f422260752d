package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reaction(context.Context, *domain.Object, ...any) error { return nil }

func TestBehaviors_RegisterAndResolve(t *testing.T) {
	reg := registry.NewBehaviors()

	replaced, err := reg.Register(domain.Behavior{ID: "b1", Triggers: []string{"close"}, Reaction: reaction})
	require.NoError(t, err)
	assert.False(t, replaced)
	_, err = reg.Register(domain.Behavior{ID: "b2", Triggers: []string{"focus"}, Reaction: reaction})
	require.NoError(t, err)

	resolved, err := reg.Resolve([]string{"b2", "b1"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	assert.Equal(t, "b2", resolved[0].ID)
	assert.Equal(t, "b1", resolved[1].ID)

	_, err = reg.Resolve([]string{"b1", "missing"})
	assert.ErrorIs(t, err, domain.ErrUnknownBehavior)
}

func TestBehaviors_RejectsEmptyTriggers(t *testing.T) {
	reg := registry.NewBehaviors()
	_, err := reg.Register(domain.Behavior{ID: "b", Reaction: reaction})
	assert.ErrorIs(t, err, domain.ErrInvalidBehavior)
	assert.Empty(t, reg.List())
}

func TestBehaviors_LastRegistrationWins(t *testing.T) {
	reg := registry.NewBehaviors()
	_, _ = reg.Register(domain.Behavior{ID: "b", Triggers: []string{"close"}, Reaction: reaction})
	replaced, err := reg.Register(domain.Behavior{ID: "b", Triggers: []string{"focus"}, Reaction: reaction})
	require.NoError(t, err)
	assert.True(t, replaced)

	b, ok := reg.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"focus"}, b.Triggers)
	assert.Len(t, reg.List(), 1)
}

func TestBehaviors_StoredTriggersAreIsolated(t *testing.T) {
	reg := registry.NewBehaviors()
	triggers := []string{"close"}
	_, err := reg.Register(domain.Behavior{ID: "b", Triggers: triggers, Reaction: reaction})
	require.NoError(t, err)
	triggers[0] = "mutated"

	got, ok := reg.Get("b")
	require.True(t, ok)
	got.Triggers[0] = "from-get"
	reg.List()[0].Triggers[0] = "from-list"
	resolved, err := reg.Resolve([]string{"b"})
	require.NoError(t, err)
	resolved[0].Triggers[0] = "from-resolve"

	again, ok := reg.Get("b")
	require.True(t, ok)
	assert.Equal(t, []string{"close"}, again.Triggers)
}

func TestTemplates_UnknownTemplate(t *testing.T) {
	reg := registry.NewTemplates()
	_, err := reg.Get("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}

func TestTemplates_StoredCopyIsImmutable(t *testing.T) {
	reg := registry.NewTemplates()
	tags := []string{"user.hello"}
	_, err := reg.Register(domain.Template{ID: "user.hello", Tags: tags})
	require.NoError(t, err)

	tags[0] = "mutated"
	got, err := reg.Get("user.hello")
	require.NoError(t, err)
	got.Tags[0] = "mutated-again"

	again, err := reg.Get("user.hello")
	require.NoError(t, err)
	assert.Equal(t, []string{"user.hello"}, again.Tags)
	assert.Equal(t, []string{"user.hello"}, reg.List())
}

func TestCommands_Invoke(t *testing.T) {
	reg := registry.NewCommands()
	var got []any
	_, err := reg.Register(domain.Command{
		ID:          "user.say-hello",
		Description: "User: Say Hello",
		Exec: func(ctx context.Context, args ...any) error {
			got = args
			return nil
		},
	})
	require.NoError(t, err)

	require.NoError(t, reg.Invoke(context.Background(), "user.say-hello", 1, "two"))
	assert.Equal(t, []any{1, "two"}, got)
	assert.Equal(t, []domain.CommandInfo{{ID: "user.say-hello", Description: "User: Say Hello"}}, reg.List())
}

func TestCommands_UnknownCommand(t *testing.T) {
	reg := registry.NewCommands()
	err := reg.Invoke(context.Background(), "does.not.exist")
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestCommands_ExecErrorIsWrapped(t *testing.T) {
	reg := registry.NewCommands()
	boom := errors.New("boom")
	_, _ = reg.Register(domain.Command{ID: "fail", Exec: func(context.Context, ...any) error { return boom }})

	err := reg.Invoke(context.Background(), "fail")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "command fail")
}

func TestCommands_OverwriteMakesOldExecUnreachable(t *testing.T) {
	reg := registry.NewCommands()
	var calls []string
	_, _ = reg.Register(domain.Command{ID: "c", Exec: func(context.Context, ...any) error {
		calls = append(calls, "old")
		return nil
	}})
	replaced, err := reg.Register(domain.Command{ID: "c", Description: "new", Exec: func(context.Context, ...any) error {
		calls = append(calls, "new")
		return nil
	}})
	require.NoError(t, err)
	assert.True(t, replaced)

	require.NoError(t, reg.Invoke(context.Background(), "c"))
	require.NoError(t, reg.Invoke(context.Background(), "c"))
	assert.Equal(t, []string{"new", "new"}, calls)
	assert.Equal(t, 1, reg.Len())
}

func TestCommands_RejectsInvalid(t *testing.T) {
	reg := registry.NewCommands()
	_, err := reg.Register(domain.Command{Exec: func(context.Context, ...any) error { return nil }})
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
	_, err = reg.Register(domain.Command{ID: "c"})
	assert.ErrorIs(t, err, domain.ErrInvalidCommand)
}

func TestCommands_Suggest(t *testing.T) {
	reg := registry.NewCommands()
	exec := func(context.Context, ...any) error { return nil }
	for _, id := range []string{"user.say-hello", "user.say-bye", "tabs.close"} {
		_, _ = reg.Register(domain.Command{ID: id, Exec: exec})
	}

	got := reg.Suggest("user.say-helo", 2)
	require.NotEmpty(t, got)
	assert.Equal(t, "user.say-hello", got[0])
	assert.Empty(t, reg.Suggest("zzzzzzzzzzzzzzzzzzzzzzz", 3))
	assert.Nil(t, reg.Suggest("user.say-hello", 0))
	assert.Nil(t, reg.Suggest("user.say-hello", -1))
}
