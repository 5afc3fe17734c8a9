package memory

import (
	"context"
	"sync"

	"github.com/formgate/formgate/pkg/domain"
)

// Store implements ports.SchemaStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.FormSchema
	mu   sync.RWMutex
}

// NewStore creates a new in-memory schema store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.FormSchema),
	}
}

// Save persists the schema in memory, overwriting any previous version.
func (s *Store) Save(ctx context.Context, schema *domain.FormSchema) error {
	// Deep copy so later caller mutations can't reach stored state.
	copied := schema.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[schema.SchemaID] = copied
	return nil
}

// Get retrieves the schema from memory.
func (s *Store) Get(ctx context.Context, schemaID string) (*domain.FormSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schema, ok := s.data[schemaID]
	if !ok {
		return nil, domain.ErrSchemaNotFound
	}

	// Copy on read so the caller can't mutate store state by pointer.
	return schema.Clone(), nil
}

// Delete removes the schema.
func (s *Store) Delete(ctx context.Context, schemaID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[schemaID]; !ok {
		return domain.ErrSchemaNotFound
	}
	delete(s.data, schemaID)
	return nil
}

// List returns all stored schemas.
func (s *Store) List(ctx context.Context) ([]*domain.FormSchema, error) {
	return s.ListBy(ctx, func(*domain.FormSchema) bool { return true })
}

// ListBy returns the schemas matching the predicate.
func (s *Store) ListBy(ctx context.Context, match func(*domain.FormSchema) bool) ([]*domain.FormSchema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.FormSchema, 0, len(s.data))
	for _, schema := range s.data {
		if match(schema) {
			out = append(out, schema.Clone())
		}
	}
	return out, nil
}
