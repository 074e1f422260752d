package arbor_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/adapters/memory"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/plugins/user"
	"github.com/aretw0/arbor/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_CreateReturnsDeclaredTags(t *testing.T) {
	ctx := context.Background()
	rt := arbor.New()
	templates := map[string][]string{
		"a": {"panel"},
		"b": {"panel", "editor", "dirty"},
		"c": nil,
	}
	for id, tags := range templates {
		require.NoError(t, rt.RegisterTemplate(domain.Template{ID: id, Tags: tags}))
	}

	for id, tags := range templates {
		obj, err := rt.Create(ctx, id)
		require.NoError(t, err)
		assert.ElementsMatch(t, tags, obj.Tags(), "template %s", id)
	}
}

func TestRuntime_UnknownCommand(t *testing.T) {
	rt := arbor.New()
	err := rt.Invoke(context.Background(), "does.not.exist")
	assert.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestRuntime_CommandOverwrite(t *testing.T) {
	ctx := context.Background()
	rt := arbor.New()
	var ran string
	require.NoError(t, rt.RegisterCommand(domain.Command{ID: "c", Description: "old",
		Exec: func(context.Context, ...any) error { ran = "old"; return nil }}))
	require.NoError(t, rt.RegisterCommand(domain.Command{ID: "c", Description: "new",
		Exec: func(context.Context, ...any) error { ran = "new"; return nil }}))

	require.NoError(t, rt.Invoke(ctx, "c"))
	assert.Equal(t, "new", ran)
	assert.Equal(t, []domain.CommandInfo{{ID: "c", Description: "new"}}, rt.Commands())
}

func TestRuntime_EndToEndSayHello(t *testing.T) {
	ctx := context.Background()
	var created int
	rt := arbor.New(
		arbor.WithIDGenerator(func(templateID string) string { return templateID + "#fixed" }),
		arbor.WithLifecycleHooks(domain.LifecycleHooks{
			OnObjectCreate: func(context.Context, *domain.ObjectEvent) { created++ },
		}),
	)
	tabs := memory.NewTabs(rt)

	// Same wiring as user.Register, spelled out against the runtime.
	require.NoError(t, rt.RegisterBehavior(domain.Behavior{
		ID:       "on-close-destroy",
		Triggers: []string{domain.TriggerClose},
		Reaction: user.OnCloseDestroy(rt),
	}))
	require.NoError(t, rt.RegisterTemplate(domain.Template{
		ID:        "user.hello",
		Tags:      []string{"user.hello"},
		Behaviors: []string{"on-close-destroy"},
		Init: func(_ *domain.Object, vb view.Builder) (view.View, error) {
			return vb.Build(view.H1("Hello World!"))
		},
	}))
	require.NoError(t, rt.RegisterCommand(domain.Command{
		ID:          "user.say-hello",
		Description: "User: Say Hello",
		Exec: func(ctx context.Context, _ ...any) error {
			obj, err := rt.GetOrCreate(ctx, "user.hello")
			if err != nil {
				return err
			}
			return tabs.AddOrFocus(ctx, obj)
		},
	}))

	require.NoError(t, rt.Invoke(ctx, "user.say-hello"))
	require.NoError(t, rt.Invoke(ctx, "user.say-hello"))

	assert.Equal(t, 1, created)
	live := rt.ByTag("user.hello")
	require.Len(t, live, 1)
	assert.True(t, live[0].Live())
	h1, ok := live[0].View().Root.Find("h1")
	require.True(t, ok)
	assert.Equal(t, "Hello World!", h1.Text)

	obj, ok := rt.Object("user.hello#fixed")
	require.True(t, ok)
	require.NoError(t, rt.Raise(ctx, obj, domain.TriggerClose))
	assert.Equal(t, domain.StatusDestroyed, obj.Status())
	assert.Empty(t, tabs.List())
}

func TestRuntime_Introspection(t *testing.T) {
	rt := arbor.New()
	require.NoError(t, user.Register(rt, memory.NewTabs(rt)))

	assert.Equal(t, []string{user.TemplateHello}, rt.Templates())
	behaviors := rt.Behaviors()
	require.Len(t, behaviors, 1)
	assert.Equal(t, user.BehaviorOnCloseDestroy, behaviors[0].ID)
	assert.Equal(t, []string{domain.TriggerClose}, behaviors[0].Triggers)
	assert.Equal(t, []string{user.CommandSayHello}, rt.SuggestCommands("user.say-helo", 1))
	assert.NotNil(t, rt.Logger())

	tpl, err := rt.Template(user.TemplateHello)
	require.NoError(t, err)
	assert.Equal(t, []string{user.BehaviorOnCloseDestroy}, tpl.Behaviors)
	_, err = rt.Template("missing")
	assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
}

func ExampleRuntime() {
	ctx := context.Background()
	rt := arbor.New()
	tabs := memory.NewTabs(rt)
	if err := user.Register(rt, tabs); err != nil {
		panic(err)
	}

	_ = rt.Invoke(ctx, user.CommandSayHello)
	_ = rt.Invoke(ctx, user.CommandSayHello)

	panel, _ := tabs.Focused()
	fmt.Println(len(tabs.List()), panel.TemplateID())
	fmt.Print(panel.View().Markdown())
	// Output:
	// 1 user.hello
	// # Hello World!
}
