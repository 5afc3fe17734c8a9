package domain

// Validation error origins.
const (
	ErrorTypeField      = "field"
	ErrorTypeCrossField = "cross-field"
	ErrorTypeSystem     = "system"
)

// Result summary messages, returned verbatim to clients.
const (
	MessageValid   = "Form is valid"
	MessageInvalid = "Form validation failed"
)

// Submission is the runtime payload checked against a form. Data maps field
// names to arbitrary scalar values; absent keys count as absent values.
type Submission struct {
	FormID string         `json:"formId" yaml:"formId" mapstructure:"formId"`
	Data   map[string]any `json:"data" yaml:"data" mapstructure:"data"`
}

// ValidationError reports a single failing check.
type ValidationError struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	ValidationType string `json:"validationType"`
}

// ValidationResult is the aggregated verdict for one submission. Errors keep
// field declaration order, then cross-field declaration order.
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Errors  []ValidationError `json:"errors"`
	Message string            `json:"message"`
}

// FieldError builds a field-level error.
func FieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message, ValidationType: ErrorTypeField}
}

// CrossFieldError builds a cross-field error.
func CrossFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message, ValidationType: ErrorTypeCrossField}
}

// SystemError builds a system-level error, e.g. an unknown form id.
func SystemError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message, ValidationType: ErrorTypeSystem}
}
