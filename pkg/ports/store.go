package ports

import (
	"context"

	"github.com/formgate/formgate/pkg/domain"
)

// FormSource resolves a form id to its configuration. The validation engine
// depends on nothing else; how schemas are persisted or served is invisible
// to it. Implementations return domain.ErrFormNotFound for unknown ids.
type FormSource interface {
	GetFormConfig(ctx context.Context, formID string) (*domain.FormConfig, error)
}

// FormSourceFunc adapts a function to the FormSource interface.
type FormSourceFunc func(ctx context.Context, formID string) (*domain.FormConfig, error)

// GetFormConfig implements FormSource.
func (f FormSourceFunc) GetFormConfig(ctx context.Context, formID string) (*domain.FormConfig, error) {
	return f(ctx, formID)
}

// SchemaStore defines the interface for persisting managed form schemas.
// Writes must be atomically visible: a concurrent Get never observes a
// partially written schema. Implementations return domain.ErrSchemaNotFound
// when an id does not exist.
type SchemaStore interface {
	// Save persists the schema under its SchemaID, overwriting any previous
	// version atomically.
	Save(ctx context.Context, schema *domain.FormSchema) error

	// Get retrieves the schema for the given id.
	Get(ctx context.Context, schemaID string) (*domain.FormSchema, error)

	// Delete removes the schema for the given id. Deleting an unknown id
	// returns domain.ErrSchemaNotFound.
	Delete(ctx context.Context, schemaID string) error

	// List returns all stored schemas in unspecified order.
	List(ctx context.Context) ([]*domain.FormSchema, error)

	// ListBy returns the schemas matching the predicate.
	ListBy(ctx context.Context, match func(*domain.FormSchema) bool) ([]*domain.FormSchema, error)
}
