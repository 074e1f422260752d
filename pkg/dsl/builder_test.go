package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
)

// fakeRegistrar records registrations in order.
type fakeRegistrar struct {
	order     []string
	behaviors map[string]domain.Behavior
	templates map[string]domain.Template
	commands  map[string]domain.Command
	fail      string
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{
		behaviors: map[string]domain.Behavior{},
		templates: map[string]domain.Template{},
		commands:  map[string]domain.Command{},
	}
}

func (f *fakeRegistrar) RegisterBehavior(b domain.Behavior) error {
	if err := b.Validate(); err != nil {
		return err
	}
	f.order = append(f.order, "behavior:"+b.ID)
	f.behaviors[b.ID] = b
	return nil
}

func (f *fakeRegistrar) RegisterTemplate(t domain.Template) error {
	if t.ID == f.fail {
		return errors.New("rejected")
	}
	f.order = append(f.order, "template:"+t.ID)
	f.templates[t.ID] = t
	return nil
}

func (f *fakeRegistrar) RegisterCommand(c domain.Command) error {
	f.order = append(f.order, "command:"+c.ID)
	f.commands[c.ID] = c
	return nil
}

func TestBuilder_RegistersInDependencyOrder(t *testing.T) {
	b := New()
	noop := func(context.Context, *domain.Object, ...any) error { return nil }

	b.Command("user.say-hello").
		Desc("User: Say Hello").
		Exec(func(context.Context, ...any) error { return nil })

	b.Template("user.hello").
		Tags("user.hello").
		Behaviors("user.on-close-destroy")

	b.Behavior("user.on-close-destroy").
		On(domain.TriggerClose).
		Do(noop)

	reg := newFakeRegistrar()
	if err := b.Build(reg); err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []string{"behavior:user.on-close-destroy", "template:user.hello", "command:user.say-hello"}
	if len(reg.order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, reg.order)
	}
	for i := range want {
		if reg.order[i] != want[i] {
			t.Errorf("Expected registration %d to be %s, got %s", i, want[i], reg.order[i])
		}
	}

	if got := reg.commands["user.say-hello"].Description; got != "User: Say Hello" {
		t.Errorf("Expected description 'User: Say Hello', got '%s'", got)
	}
	if tags := reg.templates["user.hello"].Tags; len(tags) != 1 || tags[0] != "user.hello" {
		t.Errorf("Expected tags [user.hello], got %v", tags)
	}
}

func TestBuilder_SameIDReturnsSameBuilder(t *testing.T) {
	b := New()
	b.Template("panel").Tags("a")
	b.Template("panel").Tags("b")

	reg := newFakeRegistrar()
	if err := b.Build(reg); err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	tags := reg.templates["panel"].Tags
	if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("Expected tags [a b], got %v", tags)
	}
}

func TestBuilder_JoinsErrors(t *testing.T) {
	b := New()
	b.Behavior("no-triggers").Do(func(context.Context, *domain.Object, ...any) error { return nil })
	b.Template("bad")

	reg := newFakeRegistrar()
	reg.fail = "bad"

	err := b.Build(reg)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, domain.ErrInvalidBehavior) {
		t.Errorf("Expected ErrInvalidBehavior in %v", err)
	}
}
