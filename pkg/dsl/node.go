package dsl

import (
	"github.com/aretw0/arbor/pkg/domain"
)

// BehaviorBuilder provides a fluent API for configuring a behavior.
type BehaviorBuilder struct {
	behavior domain.Behavior
}

// On adds triggers the behavior listens for.
func (b *BehaviorBuilder) On(triggers ...string) *BehaviorBuilder {
	b.behavior.Triggers = append(b.behavior.Triggers, triggers...)
	return b
}

// Do sets the reaction.
func (b *BehaviorBuilder) Do(fn domain.Reaction) *BehaviorBuilder {
	b.behavior.Reaction = fn
	return b
}

// Describe sets the description shown by introspection tools.
func (b *BehaviorBuilder) Describe(desc string) *BehaviorBuilder {
	b.behavior.Description = desc
	return b
}

// TemplateBuilder provides a fluent API for configuring an object template.
type TemplateBuilder struct {
	template domain.Template
}

// Tags adds capability tags.
func (t *TemplateBuilder) Tags(tags ...string) *TemplateBuilder {
	t.template.Tags = append(t.template.Tags, tags...)
	return t
}

// Behaviors attaches behaviors by id, in order.
func (t *TemplateBuilder) Behaviors(ids ...string) *TemplateBuilder {
	t.template.Behaviors = append(t.template.Behaviors, ids...)
	return t
}

// Init sets the constructor that builds the object's view.
func (t *TemplateBuilder) Init(fn domain.InitFunc) *TemplateBuilder {
	t.template.Init = fn
	return t
}

// CommandBuilder provides a fluent API for configuring a command.
type CommandBuilder struct {
	command domain.Command
}

// Desc sets the human readable description.
func (c *CommandBuilder) Desc(desc string) *CommandBuilder {
	c.command.Description = desc
	return c
}

// Exec sets the executable action.
func (c *CommandBuilder) Exec(fn domain.ExecFunc) *CommandBuilder {
	c.command.Exec = fn
	return c
}
