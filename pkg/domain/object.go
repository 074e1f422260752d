package domain

import (
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/aretw0/arbor/pkg/view"
)

// ObjectStatus is the lifecycle state of an object.
type ObjectStatus string

const (
	StatusLive      ObjectStatus = "live"
	StatusDestroyed ObjectStatus = "destroyed"
)

// Object is a live instance of a template.
// Tags and behaviors are fixed at creation; only the state bag, the view and the status change.
type Object struct {
	id         string
	templateID string
	tags       []string
	behaviors  []Behavior

	mu     sync.RWMutex
	view   view.View
	state  map[string]any
	status ObjectStatus
}

// NewObject builds a live object. Tags and behaviors are copied.
// The runtime is the only expected caller; tests use it to build fixtures.
func NewObject(id, templateID string, tags []string, behaviors []Behavior) *Object {
	return &Object{
		id:         id,
		templateID: templateID,
		tags:       slices.Clone(tags),
		behaviors:  cloneBehaviors(behaviors),
		state:      make(map[string]any),
		status:     StatusLive,
	}
}

// ID returns the unique instance id.
func (o *Object) ID() string { return o.id }

// TemplateID returns the id of the template the object was created from.
func (o *Object) TemplateID() string { return o.templateID }

// Tags returns a copy of the object's tags.
func (o *Object) Tags() []string { return slices.Clone(o.tags) }

// HasTag reports whether the object carries tag.
func (o *Object) HasTag(tag string) bool { return slices.Contains(o.tags, tag) }

// Behaviors returns the attached behaviors in attachment order.
func (o *Object) Behaviors() []Behavior { return cloneBehaviors(o.behaviors) }

// Listeners returns the attached behaviors whose trigger set contains trigger, in attachment order.
func (o *Object) Listeners(trigger string) []Behavior {
	var out []Behavior
	for _, b := range o.behaviors {
		if b.Listens(trigger) {
			out = append(out, b.Clone())
		}
	}
	return out
}

func cloneBehaviors(in []Behavior) []Behavior {
	if in == nil {
		return nil
	}
	out := make([]Behavior, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}

// View returns the view produced by the template's init.
func (o *Object) View() view.View {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.view
}

// SetView replaces the object's view.
func (o *Object) SetView(v view.View) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.view = v
}

// Status returns the lifecycle state.
func (o *Object) Status() ObjectStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// Live reports whether the object has not been destroyed.
func (o *Object) Live() bool {
	return o.Status() == StatusLive
}

// MarkDestroyed moves the object to StatusDestroyed.
// It returns false if the object was already destroyed.
func (o *Object) MarkDestroyed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusDestroyed {
		return false
	}
	o.status = StatusDestroyed
	return true
}

// Get reads a value from the state bag.
func (o *Object) Get(key string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.state[key]
	return v, ok
}

// Set writes a value to the state bag.
func (o *Object) Set(key string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state[key] = value
}

// Delete removes a key from the state bag.
func (o *Object) Delete(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.state, key)
}

// Keys returns the state bag keys in sorted order.
func (o *Object) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	keys := make([]string, 0, len(o.state))
	for k := range o.state {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ObjectInfo is a serializable snapshot of an object.
type ObjectInfo struct {
	ID         string         `json:"id"`
	TemplateID string         `json:"template"`
	Tags       []string       `json:"tags"`
	Status     ObjectStatus   `json:"status"`
	State      map[string]any `json:"state,omitempty"`
	View       string         `json:"view,omitempty"`
}

// Info snapshots the object. The view is rendered as markdown.
func (o *Object) Info() ObjectInfo {
	o.mu.RLock()
	defer o.mu.RUnlock()
	info := ObjectInfo{
		ID:         o.id,
		TemplateID: o.templateID,
		Tags:       slices.Clone(o.tags),
		Status:     o.status,
	}
	if len(o.state) > 0 {
		info.State = maps.Clone(o.state)
	}
	if !o.view.IsZero() {
		info.View = o.view.Markdown()
	}
	return info
}
