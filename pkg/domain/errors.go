package domain

import "errors"

// ErrSchemaNotFound is returned when a schema ID cannot be found in the store.
var ErrSchemaNotFound = errors.New("schema not found")

// ErrFormNotFound is returned when a form id matches neither the catalog nor
// a stored schema.
var ErrFormNotFound = errors.New("form configuration not found")
