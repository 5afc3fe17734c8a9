package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/formgate/formgate/pkg/domain"
)

// Store implements ports.SchemaStore using the local filesystem.
// It stores schemas as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".formgate/schemas".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".formgate", "schemas")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(schemaID string) string {
	return filepath.Join(s.BasePath, schemaID+".json")
}

// Save persists the schema to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it
// to the destination, so readers never observe a partially written schema.
func (s *Store) Save(ctx context.Context, schema *domain.FormSchema) error {
	if schema.SchemaID == "" {
		return fmt.Errorf("schemaId cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure schema directory: %w", err)
	}

	destPath := s.path(schema.SchemaID)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+schema.SchemaID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Remove if still exists (not renamed)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists, so remove it first. The
	// delete+rename window is acceptable for CLI usage; a partial file never
	// appears either way.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing schema file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to schema file: %w", err)
	}

	return nil
}

// Get retrieves the schema from its JSON file.
func (s *Store) Get(ctx context.Context, schemaID string) (*domain.FormSchema, error) {
	if schemaID == "" {
		return nil, fmt.Errorf("schemaId cannot be empty")
	}

	data, err := os.ReadFile(s.path(schemaID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSchemaNotFound
		}
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var schema domain.FormSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	return &schema, nil
}

// Delete removes the schema file.
func (s *Store) Delete(ctx context.Context, schemaID string) error {
	if schemaID == "" {
		return fmt.Errorf("schemaId cannot be empty")
	}

	err := os.Remove(s.path(schemaID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrSchemaNotFound
		}
		return fmt.Errorf("failed to delete schema file: %w", err)
	}

	return nil
}

// List returns all stored schemas.
func (s *Store) List(ctx context.Context) ([]*domain.FormSchema, error) {
	return s.ListBy(ctx, func(*domain.FormSchema) bool { return true })
}

// ListBy returns the schemas matching the predicate.
func (s *Store) ListBy(ctx context.Context, match func(*domain.FormSchema) bool) ([]*domain.FormSchema, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.FormSchema{}, nil
		}
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	out := make([]*domain.FormSchema, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()
		id := name[:len(name)-len(".json")]

		schema, err := s.Get(ctx, id)
		if err != nil {
			if err == domain.ErrSchemaNotFound {
				continue
			}
			return nil, err
		}
		if match(schema) {
			out = append(out, schema)
		}
	}
	return out, nil
}
