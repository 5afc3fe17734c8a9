package domain

import "time"

// Schema lifecycle statuses.
const (
	SchemaStatusActive   = "active"
	SchemaStatusArchived = "archived"
)

// FormSchema is the stored envelope around a FormConfig: identity, authorship
// and lifecycle metadata for a managed schema.
type FormSchema struct {
	SchemaID      string     `json:"schemaId" yaml:"schemaId" mapstructure:"schemaId"`
	SchemaName    string     `json:"schemaName" yaml:"schemaName" mapstructure:"schemaName"`
	SchemaVersion string     `json:"schemaVersion" yaml:"schemaVersion" mapstructure:"schemaVersion"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	FormConfig    FormConfig `json:"formConfig" yaml:"formConfig" mapstructure:"formConfig"`
	CreatedAt     time.Time  `json:"createdAt" yaml:"createdAt" mapstructure:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" yaml:"updatedAt" mapstructure:"updatedAt"`
	CreatedBy     string     `json:"createdBy,omitempty" yaml:"createdBy,omitempty" mapstructure:"createdBy"`
	Status        string     `json:"status" yaml:"status" mapstructure:"status"`
	Tags          []string   `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
}

// Metadata projects the schema envelope without its FormConfig, for listings.
func (s *FormSchema) Metadata() SchemaMetadata {
	return SchemaMetadata{
		SchemaID:      s.SchemaID,
		SchemaName:    s.SchemaName,
		SchemaVersion: s.SchemaVersion,
		Description:   s.Description,
		Status:        s.Status,
		Tags:          s.Tags,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		CreatedBy:     s.CreatedBy,
	}
}

// HasTag reports whether the schema carries the given tag.
func (s *FormSchema) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SchemaMetadata is the listing projection of a FormSchema.
type SchemaMetadata struct {
	SchemaID      string    `json:"schemaId"`
	SchemaName    string    `json:"schemaName"`
	SchemaVersion string    `json:"schemaVersion"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	CreatedBy     string    `json:"createdBy,omitempty"`
}

// SchemaCreateRequest carries the client-supplied fields for creating or
// updating a managed schema. Missing version and createdBy get defaults.
type SchemaCreateRequest struct {
	SchemaName    string     `json:"schemaName" yaml:"schemaName" mapstructure:"schemaName"`
	SchemaVersion string     `json:"schemaVersion,omitempty" yaml:"schemaVersion,omitempty" mapstructure:"schemaVersion"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	FormConfig    FormConfig `json:"formConfig" yaml:"formConfig" mapstructure:"formConfig"`
	CreatedBy     string     `json:"createdBy,omitempty" yaml:"createdBy,omitempty" mapstructure:"createdBy"`
	Tags          []string   `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
}
