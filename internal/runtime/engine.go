package runtime

import (
	"context"
	"errors"
	"log/slog"

	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/pkg/domain"
	"github.com/formgate/formgate/pkg/ports"
)

// Engine orchestrates validation of a submission against its form: every
// field rule in declaration order, then every cross-field rule in declaration
// order. Validation is a pure function of the form source and the payload;
// the engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	source         ports.FormSource
	logger         *slog.Logger
	gateVisibility bool
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a structured logger for the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithVisibilityGating makes the engine skip field-level rules for fields
// whose visibility conditions do not currently hold. By default rules run
// regardless of visibility.
func WithVisibilityGating() EngineOption {
	return func(e *Engine) {
		e.gateVisibility = true
	}
}

// NewEngine creates a validation engine over the given form source.
func NewEngine(source ports.FormSource, opts ...EngineOption) *Engine {
	e := &Engine{
		source: source,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks the submission against its form configuration. Failures
// are reported as data; the only short-circuit is an unresolvable form id,
// which yields a single system error.
func (e *Engine) Validate(ctx context.Context, sub domain.Submission) domain.ValidationResult {
	cfg, err := e.source.GetFormConfig(ctx, sub.FormID)
	if err != nil {
		message := "Form lookup failed"
		if errors.Is(err, domain.ErrFormNotFound) || errors.Is(err, domain.ErrSchemaNotFound) {
			message = "Form configuration not found"
		} else {
			e.logger.Error("form lookup failed", "form_id", sub.FormID, "err", err)
		}
		return domain.ValidationResult{
			Valid:   false,
			Errors:  []domain.ValidationError{domain.SystemError("formId", message)},
			Message: domain.MessageInvalid,
		}
	}

	errs := []domain.ValidationError{}

	for _, field := range cfg.Fields {
		if e.gateVisibility && !IsVisible(field, sub.Data) {
			continue
		}
		value := sub.Data[field.Name]
		for _, rule := range field.Validations {
			if ve := ApplyRule(field.Name, value, rule); ve != nil {
				errs = append(errs, *ve)
			}
		}
	}

	for _, rule := range cfg.CrossFieldValidations {
		if ve := ApplyCrossFieldRule(rule, sub.Data); ve != nil {
			errs = append(errs, *ve)
		}
	}

	result := domain.ValidationResult{
		Valid:   len(errs) == 0,
		Errors:  errs,
		Message: domain.MessageValid,
	}
	if !result.Valid {
		result.Message = domain.MessageInvalid
		e.logger.Debug("submission rejected", "form_id", sub.FormID, "errors", len(errs))
	}
	return result
}
