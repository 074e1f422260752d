package ports

import (
	"context"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TabInspector is the read side a TabManager must expose to be checked by RunTabManagerContract.
type TabInspector interface {
	TabManager
	Focused() (*domain.Object, bool)
	List() []*domain.Object
}

// RunTabManagerContract runs a suite of tests to verify that a TabManager implementation
// adheres to the add-or-focus contract. newObject must return a distinct live object per call.
func RunTabManagerContract(t *testing.T, tabs TabInspector, newObject func(t *testing.T) *domain.Object) {
	ctx := context.Background()

	t.Run("Add opens and focuses", func(t *testing.T) {
		obj := newObject(t)
		require.NoError(t, tabs.AddOrFocus(ctx, obj))

		focused, ok := tabs.Focused()
		require.True(t, ok)
		assert.Same(t, obj, focused)
		assert.Contains(t, tabs.List(), obj)
	})

	t.Run("Same object reuses its tab", func(t *testing.T) {
		obj := newObject(t)
		require.NoError(t, tabs.AddOrFocus(ctx, obj))
		before := len(tabs.List())

		require.NoError(t, tabs.AddOrFocus(ctx, obj))
		assert.Len(t, tabs.List(), before, "AddOrFocus must not open a duplicate tab")
	})

	t.Run("Focus moves between tabs", func(t *testing.T) {
		a := newObject(t)
		b := newObject(t)
		require.NoError(t, tabs.AddOrFocus(ctx, a))
		require.NoError(t, tabs.AddOrFocus(ctx, b))
		require.NoError(t, tabs.AddOrFocus(ctx, a))

		focused, ok := tabs.Focused()
		require.True(t, ok)
		assert.Same(t, a, focused)
	})

	t.Run("Destroyed object is rejected", func(t *testing.T) {
		obj := newObject(t)
		obj.MarkDestroyed()
		assert.ErrorIs(t, tabs.AddOrFocus(ctx, obj), domain.ErrObjectDestroyed)
	})
}
