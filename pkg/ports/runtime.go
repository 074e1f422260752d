package ports

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
)

// Raiser fires a trigger on an object.
type Raiser interface {
	Raise(ctx context.Context, obj *domain.Object, trigger string, args ...any) error
}

// ObjectFactory creates objects from registered templates.
type ObjectFactory interface {
	Create(ctx context.Context, templateID string) (*domain.Object, error)
	GetOrCreate(ctx context.Context, templateID string) (*domain.Object, error)
	Singleton(templateID string) (*domain.Object, bool)
}

// Registrar accepts load-time registrations.
type Registrar interface {
	RegisterBehavior(b domain.Behavior) error
	RegisterTemplate(t domain.Template) error
	RegisterCommand(c domain.Command) error
}

// Runtime is the registry context object handed to plugins at load time.
type Runtime interface {
	Registrar
	ObjectFactory
	Raiser
	Invoke(ctx context.Context, id string, args ...any) error
}
