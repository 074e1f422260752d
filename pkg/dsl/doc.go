/*
Package dsl provides a fluent Go DSL for declaring Arbor plugins.

It lets a plugin declare its behaviors, object templates and commands in one place and
register them on a runtime in a deterministic order (behaviors, templates, commands).

Example usage:

	package main

	import (
		"context"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/domain"
		"github.com/aretw0/arbor/pkg/dsl"
		"github.com/aretw0/arbor/pkg/view"
	)

	func main() {
		rt := arbor.New()
		p := dsl.New()

		p.Behavior("notes.on-close-destroy").
			On(domain.TriggerClose).
			Do(func(ctx context.Context, obj *domain.Object, _ ...any) error {
				return rt.Raise(ctx, obj, domain.DirectiveDestroy)
			})

		p.Template("notes.panel").
			Tags("notes.panel").
			Behaviors("notes.on-close-destroy").
			Init(func(obj *domain.Object, vb view.Builder) (view.View, error) {
				return vb.Build(view.H1("Notes"))
			})

		if err := p.Build(rt); err != nil {
			panic(err)
		}
	}
*/
package dsl
