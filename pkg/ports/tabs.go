package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// TabManager shows object views in tabs.
type TabManager interface {
	// AddOrFocus opens a tab for obj, or focuses the existing one if obj already has a tab.
	AddOrFocus(ctx context.Context, obj *domain.Object) error
}
