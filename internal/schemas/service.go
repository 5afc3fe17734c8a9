// Package schemas implements the managed schema lifecycle on top of a
// ports.SchemaStore: creation with defaults, lookup, filtered listings,
// updates, archival, and seeding.
package schemas

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/pkg/domain"
	"github.com/formgate/formgate/pkg/ports"
	"github.com/formgate/formgate/pkg/schema"
)

// Service manages stored form schemas. Built-in catalog forms are read-only
// and resolved ahead of the store, so a stored schema can never shadow them.
type Service struct {
	store   ports.SchemaStore
	catalog *catalog.Catalog
	logger  *slog.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a schema service backed by the given store.
func NewService(store ports.SchemaStore, opts ...Option) *Service {
	s := &Service{
		store:   store,
		catalog: catalog.New(),
		logger:  logging.NewNop(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create registers a new schema. The configuration is linted first; a new
// schema id is generated and lifecycle fields get their defaults (version
// "1.0", createdBy "system", status active).
func (s *Service) Create(ctx context.Context, req *domain.SchemaCreateRequest) (*domain.FormSchema, error) {
	if err := schema.Lint(&req.FormConfig); err != nil {
		return nil, fmt.Errorf("invalid form config: %w", err)
	}

	now := s.now()
	sc := &domain.FormSchema{
		SchemaID:      uuid.NewString(),
		SchemaName:    req.SchemaName,
		SchemaVersion: req.SchemaVersion,
		Description:   req.Description,
		FormConfig:    *req.FormConfig.Clone(),
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     req.CreatedBy,
		Status:        domain.SchemaStatusActive,
		Tags:          append([]string(nil), req.Tags...),
	}
	if sc.SchemaName == "" {
		sc.SchemaName = sc.FormConfig.FormID
	}
	if sc.SchemaVersion == "" {
		sc.SchemaVersion = "1.0"
	}
	if sc.CreatedBy == "" {
		sc.CreatedBy = "system"
	}

	if err := s.store.Save(ctx, sc); err != nil {
		return nil, fmt.Errorf("failed to save schema: %w", err)
	}

	s.logger.Info("schema created", "schemaId", sc.SchemaID, "schemaName", sc.SchemaName)
	return sc, nil
}

// Get retrieves a stored schema by id.
func (s *Service) Get(ctx context.Context, schemaID string) (*domain.FormSchema, error) {
	return s.store.Get(ctx, schemaID)
}

// List returns all stored schemas, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.FormSchema, error) {
	return s.sorted(s.store.List(ctx))
}

// ListByStatus returns the schemas with the given lifecycle status.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]*domain.FormSchema, error) {
	return s.sorted(s.store.ListBy(ctx, func(sc *domain.FormSchema) bool {
		return sc.Status == status
	}))
}

// ListByTag returns the schemas carrying the given tag.
func (s *Service) ListByTag(ctx context.Context, tag string) ([]*domain.FormSchema, error) {
	return s.sorted(s.store.ListBy(ctx, func(sc *domain.FormSchema) bool {
		return sc.HasTag(tag)
	}))
}

// SearchByName returns the schemas whose name contains the given fragment,
// case-insensitively.
func (s *Service) SearchByName(ctx context.Context, fragment string) ([]*domain.FormSchema, error) {
	needle := strings.ToLower(fragment)
	return s.sorted(s.store.ListBy(ctx, func(sc *domain.FormSchema) bool {
		return strings.Contains(strings.ToLower(sc.SchemaName), needle)
	}))
}

// ListMetadata returns the lightweight projection of every stored schema,
// newest first.
func (s *Service) ListMetadata(ctx context.Context) ([]domain.SchemaMetadata, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	meta := make([]domain.SchemaMetadata, 0, len(all))
	for _, sc := range all {
		meta = append(meta, sc.Metadata())
	}
	return meta, nil
}

// Update replaces the configuration and descriptive fields of an existing
// schema. Creation metadata is preserved; UpdatedAt is bumped.
func (s *Service) Update(ctx context.Context, schemaID string, req *domain.SchemaCreateRequest) (*domain.FormSchema, error) {
	if err := schema.Lint(&req.FormConfig); err != nil {
		return nil, fmt.Errorf("invalid form config: %w", err)
	}

	existing, err := s.store.Get(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	existing.FormConfig = *req.FormConfig.Clone()
	if req.SchemaName != "" {
		existing.SchemaName = req.SchemaName
	}
	if req.SchemaVersion != "" {
		existing.SchemaVersion = req.SchemaVersion
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.Tags != nil {
		existing.Tags = append([]string(nil), req.Tags...)
	}
	existing.UpdatedAt = s.now()

	if err := s.store.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to save schema: %w", err)
	}

	s.logger.Info("schema updated", "schemaId", schemaID)
	return existing, nil
}

// UpdateStatus transitions a schema between active and archived.
func (s *Service) UpdateStatus(ctx context.Context, schemaID, status string) (*domain.FormSchema, error) {
	if status != domain.SchemaStatusActive && status != domain.SchemaStatusArchived {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	existing, err := s.store.Get(ctx, schemaID)
	if err != nil {
		return nil, err
	}

	existing.Status = status
	existing.UpdatedAt = s.now()

	if err := s.store.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to save schema: %w", err)
	}

	s.logger.Info("schema status changed", "schemaId", schemaID, "status", status)
	return existing, nil
}

// Delete removes a stored schema.
func (s *Service) Delete(ctx context.Context, schemaID string) error {
	if err := s.store.Delete(ctx, schemaID); err != nil {
		return err
	}
	s.logger.Info("schema deleted", "schemaId", schemaID)
	return nil
}

// Seed registers starter schemas from the built-in catalog so a fresh store
// is not empty. Seeding is idempotent by schema name: forms already present
// are skipped.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, sc := range existing {
		present[sc.SchemaName] = true
	}

	for _, id := range []string{catalog.FormRegistration, catalog.FormContact} {
		cfg, err := s.catalog.GetFormConfig(ctx, id)
		if err != nil {
			return err
		}
		if present[cfg.FormID] {
			continue
		}
		_, err = s.Create(ctx, &domain.SchemaCreateRequest{
			SchemaName:  cfg.FormID,
			Description: cfg.FormDescription,
			FormConfig:  *cfg,
			Tags:        []string{"seed"},
		})
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", id, err)
		}
	}
	return nil
}

// GetFormConfig resolves a form id for validation: built-in catalog forms
// first, then stored schemas by schema id. Implements ports.FormSource.
func (s *Service) GetFormConfig(ctx context.Context, formID string) (*domain.FormConfig, error) {
	cfg, err := s.catalog.GetFormConfig(ctx, formID)
	if err == nil {
		return cfg, nil
	}

	sc, err := s.store.Get(ctx, formID)
	if err != nil {
		return nil, err
	}
	return &sc.FormConfig, nil
}

func (s *Service) sorted(list []*domain.FormSchema, err error) ([]*domain.FormSchema, error) {
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].SchemaID < list[j].SchemaID
	})
	return list, nil
}
