package formgate

import (
	"context"
	"log/slog"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/runtime"
	"github.com/formgate/formgate/internal/schemas"
	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/domain"
	"github.com/formgate/formgate/pkg/ports"
)

// Version is the library version.
const Version = "0.3.0"

// Engine is the high-level entry point for the FormGate library. It wraps the
// internal validation runtime and the schema registry behind a simplified API.
type Engine struct {
	store       ports.SchemaStore
	source      ports.FormSource
	schemas     *schemas.Service
	runtime     *runtime.Engine
	logger      *slog.Logger
	runtimeOpts []runtime.EngineOption
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore injects a schema store backend. Defaults to an in-memory store.
func WithStore(store ports.SchemaStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithSource injects a custom form source, bypassing the built-in catalog and
// the schema registry entirely.
func WithSource(source ports.FormSource) Option {
	return func(e *Engine) {
		e.source = source
	}
}

// WithVisibilityGating makes validation skip fields whose visibility
// conditions do not hold. By default hidden fields are validated too.
func WithVisibilityGating() Option {
	return func(e *Engine) {
		e.runtimeOpts = append(e.runtimeOpts, runtime.WithVisibilityGating())
	}
}

// New initializes a FormGate Engine. Without options it validates against the
// built-in form catalog plus an empty in-memory schema registry.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.store == nil {
		e.store = memory.NewStore()
	}

	e.schemas = schemas.NewService(e.store, schemas.WithLogger(e.logger))
	if e.source == nil {
		e.source = e.schemas
	}

	runtimeOpts := append([]runtime.EngineOption{runtime.WithLogger(e.logger)}, e.runtimeOpts...)
	e.runtime = runtime.NewEngine(e.source, runtimeOpts...)

	return e
}

// Validate checks a payload against the named form.
func (e *Engine) Validate(ctx context.Context, formID string, data map[string]any) domain.ValidationResult {
	return e.ValidateSubmission(ctx, domain.Submission{FormID: formID, Data: data})
}

// ValidateSubmission checks a full submission.
func (e *Engine) ValidateSubmission(ctx context.Context, sub domain.Submission) domain.ValidationResult {
	return e.runtime.Validate(ctx, sub)
}

// GetForm resolves a form id the same way validation does.
func (e *Engine) GetForm(ctx context.Context, formID string) (*domain.FormConfig, error) {
	return e.source.GetFormConfig(ctx, formID)
}

// Forms returns the built-in form ids.
func (e *Engine) Forms() []string {
	return catalog.New().IDs()
}

// Schemas exposes the managed schema registry.
func (e *Engine) Schemas() *schemas.Service {
	return e.schemas
}

// Seed registers the starter schemas in the registry.
func (e *Engine) Seed(ctx context.Context) error {
	return e.schemas.Seed(ctx)
}
