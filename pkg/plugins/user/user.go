// Package user is the "Hello World" plugin: a command that opens a singleton panel
// showing a heading, and a behavior that destroys the panel when its tab closes.
package user

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/view"
)

const (
	TemplateHello          = "user.hello"
	TagHello               = "user.hello"
	BehaviorOnCloseDestroy = "user.on-close-destroy"
	CommandSayHello        = "user.say-hello"

	Greeting = "Hello World!"
)

// HelloPanel builds the panel view: a single heading and no event bindings.
func HelloPanel(_ *domain.Object, vb view.Builder) (view.View, error) {
	return vb.Build(view.H1(Greeting), helloBindings()...)
}

func helloBindings() []view.Binding {
	return nil
}

// OnCloseDestroy returns the reaction that turns a close gesture into the destroy directive.
func OnCloseDestroy(r ports.Raiser) domain.Reaction {
	return func(ctx context.Context, obj *domain.Object, _ ...any) error {
		return r.Raise(ctx, obj, domain.DirectiveDestroy)
	}
}

// SayHello opens the hello panel, or focuses it if it is already open.
func SayHello(rt ports.ObjectFactory, tabs ports.TabManager) domain.ExecFunc {
	return func(ctx context.Context, _ ...any) error {
		obj, err := rt.GetOrCreate(ctx, TemplateHello)
		if err != nil {
			return err
		}
		return tabs.AddOrFocus(ctx, obj)
	}
}

// Register loads the plugin into rt.
func Register(rt ports.Runtime, tabs ports.TabManager) error {
	p := dsl.New()

	p.Behavior(BehaviorOnCloseDestroy).
		On(domain.TriggerClose).
		Describe("Destroy the object when its tab is closed").
		Do(OnCloseDestroy(rt))

	p.Template(TemplateHello).
		Tags(TagHello).
		Behaviors(BehaviorOnCloseDestroy).
		Init(HelloPanel)

	p.Command(CommandSayHello).
		Desc("User: Say Hello").
		Exec(SayHello(rt, tabs))

	return p.Build(rt)
}
