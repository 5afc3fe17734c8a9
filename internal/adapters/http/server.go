// Package http exposes the validation engine and the schema registry over a
// small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/logging"
	"github.com/formgate/formgate/internal/schemas"
	"github.com/formgate/formgate/pkg/domain"
)

// Validator is the part of the engine the HTTP surface needs.
type Validator interface {
	Validate(ctx context.Context, sub domain.Submission) domain.ValidationResult
}

// Server wires the validator and the schema service into an http.Handler.
type Server struct {
	validator Validator
	schemas   *schemas.Service
	catalog   *catalog.Catalog
	logger    *slog.Logger
	origins   []string
	metrics   *metrics
}

type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithAllowedOrigins overrides the CORS allow list.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(validator Validator, svc *schemas.Service, opts ...Option) http.Handler {
	s := &Server{
		validator: validator,
		schemas:   svc,
		catalog:   catalog.New(),
		logger:    logging.NewNop(),
		origins:   DefaultAllowedOrigins,
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.metrics.instrument)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/forms", func(r chi.Router) {
			r.Get("/", s.listForms)
			r.Get("/{formID}", s.getForm)
		})

		r.Post("/validate", s.validate)

		r.Route("/schemas", func(r chi.Router) {
			r.Post("/", s.createSchema)
			r.Get("/", s.listSchemas)
			r.Get("/metadata", s.listSchemaMetadata)
			r.Route("/{schemaID}", func(r chi.Router) {
				r.Get("/", s.getSchema)
				r.Put("/", s.updateSchema)
				r.Delete("/", s.deleteSchema)
				r.Patch("/status", s.updateSchemaStatus)
				r.Get("/form-config", s.getSchemaFormConfig)
			})
		})
	})

	return enableCORS(s.origins, r)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// listForms returns every built-in form configuration keyed by its id.
func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.All())
}

// getForm returns one built-in form configuration.
func (s *Server) getForm(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")
	cfg, err := s.catalog.GetFormConfig(r.Context(), formID)
	if err != nil {
		writeError(w, http.StatusNotFound, "form not found: "+formID)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// validate runs a submission through the engine. Validation failures are part
// of the result body, not HTTP errors; the endpoint answers 200 either way.
func (s *Server) validate(w http.ResponseWriter, r *http.Request) {
	var sub domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.logger.Warn("validate: invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sub.FormID == "" {
		writeError(w, http.StatusBadRequest, "formId is required")
		return
	}

	result := s.validator.Validate(r.Context(), sub)
	s.metrics.observeValidation(sub.FormID, result.Valid)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) createSchema(w http.ResponseWriter, r *http.Request) {
	var req domain.SchemaCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := s.schemas.Create(r.Context(), &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// listSchemas supports filtering by status, tag or a name fragment via query
// parameters. Filters are applied one at a time, in that order of precedence.
func (s *Server) listSchemas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		list []*domain.FormSchema
		err  error
	)
	switch {
	case q.Get("status") != "":
		list, err = s.schemas.ListByStatus(ctx, q.Get("status"))
	case q.Get("tag") != "":
		list, err = s.schemas.ListByTag(ctx, q.Get("tag"))
	case strings.TrimSpace(q.Get("name")) != "":
		list, err = s.schemas.SearchByName(ctx, strings.TrimSpace(q.Get("name")))
	default:
		list, err = s.schemas.List(ctx)
	}
	if err != nil {
		s.serverError(w, "list schemas", err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) listSchemaMetadata(w http.ResponseWriter, r *http.Request) {
	meta, err := s.schemas.ListMetadata(r.Context())
	if err != nil {
		s.serverError(w, "list schema metadata", err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (s *Server) getSchema(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, "schemaID")
	sc, err := s.schemas.Get(r.Context(), schemaID)
	if err != nil {
		s.schemaError(w, schemaID, "get schema", err)
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) updateSchema(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, "schemaID")

	var req domain.SchemaCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.schemas.Update(r.Context(), schemaID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaNotFound) {
			writeError(w, http.StatusNotFound, "schema not found: "+schemaID)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) updateSchemaStatus(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, "schemaID")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.schemas.UpdateStatus(r.Context(), schemaID, body.Status)
	if err != nil {
		if errors.Is(err, domain.ErrSchemaNotFound) {
			writeError(w, http.StatusNotFound, "schema not found: "+schemaID)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteSchema(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, "schemaID")
	if err := s.schemas.Delete(r.Context(), schemaID); err != nil {
		s.schemaError(w, schemaID, "delete schema", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getSchemaFormConfig returns just the embedded configuration of a stored
// schema, the shape frontends render from.
func (s *Server) getSchemaFormConfig(w http.ResponseWriter, r *http.Request) {
	schemaID := chi.URLParam(r, "schemaID")
	sc, err := s.schemas.Get(r.Context(), schemaID)
	if err != nil {
		s.schemaError(w, schemaID, "get schema form config", err)
		return
	}
	writeJSON(w, http.StatusOK, sc.FormConfig)
}

func (s *Server) schemaError(w http.ResponseWriter, schemaID, op string, err error) {
	if errors.Is(err, domain.ErrSchemaNotFound) {
		writeError(w, http.StatusNotFound, "schema not found: "+schemaID)
		return
	}
	s.serverError(w, op, err)
}

func (s *Server) serverError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op+" failed", "err", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
