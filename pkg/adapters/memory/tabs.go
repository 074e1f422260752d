package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// Tabs implements ports.TabManager in memory.
// Tabs of destroyed objects are dropped as soon as they are observed.
type Tabs struct {
	raiser ports.Raiser
	logger *slog.Logger

	mu      sync.Mutex
	tabs    []*domain.Object
	focused string
}

type TabsOption func(*Tabs)

// WithLogger sets the logger used for tab events.
func WithLogger(logger *slog.Logger) TabsOption {
	return func(t *Tabs) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTabs creates an empty tab set. raiser receives focus and close gestures; it may be nil.
func NewTabs(raiser ports.Raiser, opts ...TabsOption) *Tabs {
	t := &Tabs{
		raiser: raiser,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddOrFocus opens a tab for obj, or focuses its existing tab and raises focus on it.
func (t *Tabs) AddOrFocus(ctx context.Context, obj *domain.Object) error {
	if obj == nil {
		return fmt.Errorf("add tab: nil object")
	}
	if !obj.Live() {
		return fmt.Errorf("add tab for %s: %w", obj.ID(), domain.ErrObjectDestroyed)
	}

	t.mu.Lock()
	t.pruneLocked()
	existing := slices.Contains(t.tabs, obj)
	if !existing {
		t.tabs = append(t.tabs, obj)
	}
	t.focused = obj.ID()
	t.mu.Unlock()

	if !existing {
		t.logger.DebugContext(ctx, "tab opened", "object", obj.ID())
		return nil
	}
	t.logger.DebugContext(ctx, "tab focused", "object", obj.ID())
	if t.raiser == nil {
		return nil
	}
	return t.raiser.Raise(ctx, obj, domain.TriggerFocus)
}

// Close is the tab close gesture: it raises close on the tab's object.
// The tab goes away once the object is destroyed; an object whose behaviors
// do not destroy it keeps its tab.
func (t *Tabs) Close(ctx context.Context, objectID string) error {
	t.mu.Lock()
	idx := slices.IndexFunc(t.tabs, func(o *domain.Object) bool { return o.ID() == objectID })
	var obj *domain.Object
	if idx >= 0 {
		obj = t.tabs[idx]
	}
	t.mu.Unlock()

	if obj == nil {
		return fmt.Errorf("close tab: no tab for %s", objectID)
	}

	var err error
	if t.raiser != nil && obj.Live() {
		err = t.raiser.Raise(ctx, obj, domain.TriggerClose)
	}

	t.mu.Lock()
	t.pruneLocked()
	t.mu.Unlock()

	if !obj.Live() {
		t.logger.DebugContext(ctx, "tab closed", "object", objectID)
	}
	return err
}

// CloseFocused closes the focused tab.
func (t *Tabs) CloseFocused(ctx context.Context) error {
	obj, ok := t.Focused()
	if !ok {
		return fmt.Errorf("close tab: no tab is focused")
	}
	return t.Close(ctx, obj.ID())
}

// Detach removes the tab of a destroyed object. It has the OnObjectDestroy hook signature.
func (t *Tabs) Detach(_ context.Context, ev *domain.ObjectEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tabs = slices.DeleteFunc(t.tabs, func(o *domain.Object) bool { return o.ID() == ev.ObjectID })
	t.refocusLocked()
}

// Focused returns the object shown in the focused tab.
func (t *Tabs) Focused() (*domain.Object, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	for _, o := range t.tabs {
		if o.ID() == t.focused {
			return o, true
		}
	}
	return nil, false
}

// List returns the objects with an open tab, in opening order.
func (t *Tabs) List() []*domain.Object {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pruneLocked()
	return slices.Clone(t.tabs)
}

func (t *Tabs) pruneLocked() {
	t.tabs = slices.DeleteFunc(t.tabs, func(o *domain.Object) bool { return !o.Live() })
	t.refocusLocked()
}

// refocusLocked moves focus to the last tab when the focused one is gone.
func (t *Tabs) refocusLocked() {
	if slices.ContainsFunc(t.tabs, func(o *domain.Object) bool { return o.ID() == t.focused }) {
		return
	}
	t.focused = ""
	if n := len(t.tabs); n > 0 {
		t.focused = t.tabs[n-1].ID()
	}
}
