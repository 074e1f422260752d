package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Builder collects a plugin's registrations before applying them to a runtime.
type Builder struct {
	behaviors []*BehaviorBuilder
	templates []*TemplateBuilder
	commands  []*CommandBuilder
	index     map[string]any
}

// New creates a new plugin builder.
func New() *Builder {
	return &Builder{
		index: make(map[string]any),
	}
}

// Behavior declares a behavior.
// If the behavior was already declared, it returns the existing builder.
func (b *Builder) Behavior(id string) *BehaviorBuilder {
	key := "behavior:" + id
	if bb, ok := b.index[key].(*BehaviorBuilder); ok {
		return bb
	}
	bb := &BehaviorBuilder{behavior: domain.Behavior{ID: id}}
	b.index[key] = bb
	b.behaviors = append(b.behaviors, bb)
	return bb
}

// Template declares an object template.
// If the template was already declared, it returns the existing builder.
func (b *Builder) Template(id string) *TemplateBuilder {
	key := "template:" + id
	if tb, ok := b.index[key].(*TemplateBuilder); ok {
		return tb
	}
	tb := &TemplateBuilder{template: domain.Template{ID: id}}
	b.index[key] = tb
	b.templates = append(b.templates, tb)
	return tb
}

// Command declares a command.
// If the command was already declared, it returns the existing builder.
func (b *Builder) Command(id string) *CommandBuilder {
	key := "command:" + id
	if cb, ok := b.index[key].(*CommandBuilder); ok {
		return cb
	}
	cb := &CommandBuilder{command: domain.Command{ID: id}}
	b.index[key] = cb
	b.commands = append(b.commands, cb)
	return cb
}

// Build registers everything on reg: behaviors first, then templates, then commands,
// each group in declaration order. All errors are reported, joined.
func (b *Builder) Build(reg ports.Registrar) error {
	var errs []error
	for _, bb := range b.behaviors {
		if err := reg.RegisterBehavior(bb.behavior); err != nil {
			errs = append(errs, fmt.Errorf("behavior %s: %w", bb.behavior.ID, err))
		}
	}
	for _, tb := range b.templates {
		if err := reg.RegisterTemplate(tb.template); err != nil {
			errs = append(errs, fmt.Errorf("template %s: %w", tb.template.ID, err))
		}
	}
	for _, cb := range b.commands {
		if err := reg.RegisterCommand(cb.command); err != nil {
			errs = append(errs, fmt.Errorf("command %s: %w", cb.command.ID, err))
		}
	}
	return errors.Join(errs...)
}
