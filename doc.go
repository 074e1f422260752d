/*
Package arbor is a data-driven object runtime for plugin hosts.

Objects are instantiated from declarative templates, tagged with capability labels, and
augmented with named behaviors that react to raised triggers. A command registry exposes
operations to the host UI by string id. Nothing is wired at compile time: plugins
register templates, behaviors and commands against a Runtime at load time, and the host
drives everything through Invoke and Raise.

# Concept

The Runtime is an explicit context object. There are no package-level registries;
every plugin receives the Runtime it registers into. Execution is synchronous: Create,
Raise and Invoke run to completion on the caller's goroutine. Reactions and commands
may raise and invoke in turn; chains nested deeper than 64 calls fail with
domain.ErrRecursionLimit.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/arbor"
		"github.com/aretw0/arbor/pkg/adapters/memory"
		"github.com/aretw0/arbor/pkg/plugins/user"
	)

	func main() {
		rt := arbor.New()
		tabs := memory.NewTabs(rt)

		if err := user.Register(rt, tabs); err != nil {
			log.Fatal(err)
		}

		// Invoking twice focuses the same panel instead of opening a second one.
		ctx := context.Background()
		for i := 0; i < 2; i++ {
			if err := rt.Invoke(ctx, user.CommandSayHello); err != nil {
				log.Fatal(err)
			}
		}
	}

# Lifecycle

Objects start Live. Raising the "destroy" directive (usually from a behavior reacting to
"close") moves them to Destroyed, which is terminal. GetOrCreate then builds a fresh
instance on its next call.
*/
package arbor
