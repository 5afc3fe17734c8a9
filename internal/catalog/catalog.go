// Package catalog holds the built-in form definitions shipped with the
// service. It is pure data: lookup by short form id, nothing else.
package catalog

import (
	"context"

	"github.com/formgate/formgate/pkg/domain"
)

// Built-in form ids.
const (
	FormRegistration    = "registration"
	FormContact         = "contact"
	FormConditional     = "conditional"
	FormCrossValidation = "cross-validation"
)

// Catalog resolves built-in form ids to their configurations. It implements
// ports.FormSource. Configurations are constructed fresh per lookup so
// callers can never mutate shared state.
type Catalog struct{}

// New returns the built-in catalog.
func New() *Catalog { return &Catalog{} }

// GetFormConfig returns the built-in form for the given id, or
// domain.ErrFormNotFound.
func (c *Catalog) GetFormConfig(ctx context.Context, formID string) (*domain.FormConfig, error) {
	switch formID {
	case FormRegistration:
		return Registration(), nil
	case FormContact:
		return Contact(), nil
	case FormConditional:
		return Conditional(), nil
	case FormCrossValidation:
		return CrossValidation(), nil
	default:
		return nil, domain.ErrFormNotFound
	}
}

// All returns every built-in form keyed by its short id.
func (c *Catalog) All() map[string]*domain.FormConfig {
	return map[string]*domain.FormConfig{
		FormRegistration:    Registration(),
		FormContact:         Contact(),
		FormConditional:     Conditional(),
		FormCrossValidation: CrossValidation(),
	}
}

// IDs returns the built-in form ids in stable order.
func (c *Catalog) IDs() []string {
	return []string{FormConditional, FormContact, FormCrossValidation, FormRegistration}
}
