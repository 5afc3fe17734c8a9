package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/formgate/formgate/pkg/domain"
)

// Source implements ports.FormSource using an in-memory map. It is handy for
// tests and for serving configurations loaded from disk without a store.
type Source struct {
	forms map[string]*domain.FormConfig
}

// NewSource creates a Source from the given configurations, keyed by FormID.
// Configurations without a form id are rejected.
func NewSource(configs ...*domain.FormConfig) (*Source, error) {
	forms := make(map[string]*domain.FormConfig, len(configs))
	for _, cfg := range configs {
		if cfg.FormID == "" {
			return nil, fmt.Errorf("form config missing formId")
		}
		forms[cfg.FormID] = cfg.Clone()
	}
	return &Source{forms: forms}, nil
}

// GetFormConfig retrieves a configuration by form id.
func (s *Source) GetFormConfig(ctx context.Context, formID string) (*domain.FormConfig, error) {
	cfg, ok := s.forms[formID]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	return cfg.Clone(), nil
}

// ListForms returns all available form ids.
func (s *Source) ListForms() []string {
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids) // Deterministic order
	return ids
}
