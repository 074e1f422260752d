package manifest

import (
	"context"
	"fmt"
	"maps"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/view"
)

// Apply registers the manifest's behaviors, templates and commands on rt.
// Commands that open templates show them through tabs.
func (m *Manifest) Apply(rt ports.Runtime, tabs ports.TabManager) error {
	p := dsl.New()

	for _, b := range m.Behaviors {
		p.Behavior(b.ID).
			On(b.Triggers...).
			Describe(b.Description).
			Do(reaction(rt, b))
	}

	for _, t := range m.Templates {
		tb := p.Template(t.ID).
			Tags(t.Tags...).
			Behaviors(t.Behaviors...)
		if t.View != nil {
			tb.Init(staticView(*t.View))
		}
	}

	for _, c := range m.Commands {
		p.Command(c.ID).
			Desc(c.Desc).
			Exec(exec(rt, tabs, c.Action))
	}

	if err := p.Build(rt); err != nil {
		return fmt.Errorf("manifest %s: %w", m.Name, err)
	}
	return nil
}

func reaction(r ports.Raiser, b Behavior) domain.Reaction {
	set := maps.Clone(b.Set)
	return func(ctx context.Context, obj *domain.Object, args ...any) error {
		for k, v := range set {
			obj.Set(k, v)
		}
		if b.Raise != "" {
			return r.Raise(ctx, obj, b.Raise, args...)
		}
		return nil
	}
}

func staticView(root view.Element) domain.InitFunc {
	return func(_ *domain.Object, vb view.Builder) (view.View, error) {
		return vb.Build(root)
	}
}

func exec(rt ports.Runtime, tabs ports.TabManager, a Action) domain.ExecFunc {
	return func(ctx context.Context, args ...any) error {
		switch {
		case a.Open != "":
			obj, err := rt.GetOrCreate(ctx, a.Open)
			if err != nil {
				return err
			}
			if tabs == nil {
				return nil
			}
			return tabs.AddOrFocus(ctx, obj)
		case a.Raise != "":
			obj, ok := rt.Singleton(a.Target)
			if !ok {
				return nil
			}
			return rt.Raise(ctx, obj, a.Raise, args...)
		default:
			return rt.Invoke(ctx, a.Invoke, args...)
		}
	}
}
