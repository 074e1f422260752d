package runtime

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/google/uuid"
)

func newObjectID(templateID string) string {
	return templateID + "#" + uuid.NewString()
}

// Create instantiates a new object from the template registered under templateID.
// The template's init runs synchronously; if it fails the object is discarded.
func (e *Engine) Create(ctx context.Context, templateID string) (*domain.Object, error) {
	tpl, err := e.templates.Get(templateID)
	if err != nil {
		return nil, err
	}

	behaviors, err := e.behaviors.Resolve(tpl.Behaviors)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", templateID, err)
	}

	obj := domain.NewObject(e.newID(templateID), tpl.ID, tpl.Tags, behaviors)

	if tpl.Init != nil {
		v, err := tpl.Init(obj, e.builder)
		if err != nil {
			return nil, fmt.Errorf("init %s: %w", templateID, err)
		}
		obj.SetView(v)
	}

	e.mu.Lock()
	e.live = append(e.live, obj)
	e.byID[obj.ID()] = obj
	e.mu.Unlock()

	e.logger.DebugContext(ctx, "object created", "object", obj.ID(), "template", templateID)
	if e.hooks.OnObjectCreate != nil {
		e.hooks.OnObjectCreate(ctx, &domain.ObjectEvent{
			EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventObjectCreate},
			ObjectID:   obj.ID(),
			TemplateID: templateID,
			Tags:       obj.Tags(),
		})
	}

	if err := e.Raise(ctx, obj, domain.TriggerInit); err != nil {
		return obj, err
	}
	return obj, nil
}

// GetOrCreate returns the live singleton for templateID, creating it on first use.
// Once the singleton is destroyed, the next call creates a fresh one.
func (e *Engine) GetOrCreate(ctx context.Context, templateID string) (*domain.Object, error) {
	if obj, ok := e.Singleton(templateID); ok {
		return obj, nil
	}

	obj, err := e.Create(ctx, templateID)
	if obj == nil {
		return nil, err
	}
	if obj.Live() {
		e.mu.Lock()
		e.singletons[templateID] = obj
		e.mu.Unlock()
	}
	return obj, err
}

// Singleton returns the live singleton for templateID without creating one.
func (e *Engine) Singleton(templateID string) (*domain.Object, bool) {
	e.mu.RLock()
	obj, ok := e.singletons[templateID]
	e.mu.RUnlock()
	if !ok || !obj.Live() {
		return nil, false
	}
	return obj, true
}

// Object returns the live object with the given instance id.
func (e *Engine) Object(id string) (*domain.Object, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	obj, ok := e.byID[id]
	return obj, ok
}

// Objects returns the live objects in creation order.
func (e *Engine) Objects() []*domain.Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.live)
}

// ByTag returns the live objects carrying tag, in creation order.
func (e *Engine) ByTag(tag string) []*domain.Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []*domain.Object
	for _, obj := range e.live {
		if obj.HasTag(tag) {
			out = append(out, obj)
		}
	}
	return out
}

// destroy moves obj to Destroyed and drops it from the live table and the singleton memo.
func (e *Engine) destroy(ctx context.Context, obj *domain.Object) {
	if !obj.MarkDestroyed() {
		return
	}

	e.mu.Lock()
	delete(e.byID, obj.ID())
	e.live = slices.DeleteFunc(e.live, func(o *domain.Object) bool { return o == obj })
	if e.singletons[obj.TemplateID()] == obj {
		delete(e.singletons, obj.TemplateID())
	}
	e.mu.Unlock()

	e.logger.DebugContext(ctx, "object destroyed", "object", obj.ID())
	if e.hooks.OnObjectDestroy != nil {
		e.hooks.OnObjectDestroy(ctx, &domain.ObjectEvent{
			EventBase:  domain.EventBase{Timestamp: e.now(), Type: domain.EventObjectDestroy},
			ObjectID:   obj.ID(),
			TemplateID: obj.TemplateID(),
			Tags:       obj.Tags(),
		})
	}
}

func isUnknownCommand(err error) bool {
	return errors.Is(err, domain.ErrUnknownCommand)
}
