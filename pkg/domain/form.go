package domain

// Control type constants define how a field is rendered by clients.
const (
	ControlInput    = "input"
	ControlSelect   = "select"
	ControlRadio    = "radio"
	ControlCheckbox = "checkbox"
	ControlTextarea = "textarea"
)

// Condition operators supported by FieldCondition.
const (
	ConditionEquals = "equals"
	ConditionIn     = "in"
)

// ConditionActionShow is the only action with runtime meaning: a matching
// condition makes the field visible.
const ConditionActionShow = "show"

// FormConfig is the declarative description of a form. It is immutable once
// constructed; the engine only ever reads it.
type FormConfig struct {
	FormID                string                 `json:"formId" yaml:"formId" mapstructure:"formId"`
	FormTitle             string                 `json:"formTitle" yaml:"formTitle" mapstructure:"formTitle"`
	FormDescription       string                 `json:"formDescription,omitempty" yaml:"formDescription,omitempty" mapstructure:"formDescription"`
	Fields                []FormField            `json:"fields" yaml:"fields" mapstructure:"fields"`
	SubmitButtonText      string                 `json:"submitButtonText,omitempty" yaml:"submitButtonText,omitempty" mapstructure:"submitButtonText"`
	CancelButtonText      string                 `json:"cancelButtonText,omitempty" yaml:"cancelButtonText,omitempty" mapstructure:"cancelButtonText"`
	CrossFieldValidations []CrossFieldValidation `json:"crossFieldValidations,omitempty" yaml:"crossFieldValidations,omitempty" mapstructure:"crossFieldValidations"`
}

// Field returns the field with the given name, or nil if the form does not
// declare it.
func (c *FormConfig) Field(name string) *FormField {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// FormField models a single named input in a form. Name doubles as the
// submission payload key and must be unique within the form.
type FormField struct {
	Name         string           `json:"name" yaml:"name" mapstructure:"name"`
	Label        string           `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
	ControlType  string           `json:"controlType" yaml:"controlType" mapstructure:"controlType"`
	InputType    string           `json:"inputType,omitempty" yaml:"inputType,omitempty" mapstructure:"inputType"`
	DefaultValue any              `json:"defaultValue,omitempty" yaml:"defaultValue,omitempty" mapstructure:"defaultValue"`
	Placeholder  string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty" mapstructure:"placeholder"`
	Validations  []ValidationRule `json:"validations,omitempty" yaml:"validations,omitempty" mapstructure:"validations"`
	Options      []SelectOption   `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
	Attributes   map[string]any   `json:"attributes,omitempty" yaml:"attributes,omitempty" mapstructure:"attributes"`
	Order        int              `json:"order,omitempty" yaml:"order,omitempty" mapstructure:"order"`
	CSSClass     string           `json:"cssClass,omitempty" yaml:"cssClass,omitempty" mapstructure:"cssClass"`
	Hidden       bool             `json:"hidden,omitempty" yaml:"hidden,omitempty" mapstructure:"hidden"`
	Conditions   []FieldCondition `json:"conditions,omitempty" yaml:"conditions,omitempty" mapstructure:"conditions"`
}

// SelectOption is a label/value pair for select and radio controls.
type SelectOption struct {
	Label string `json:"label" yaml:"label" mapstructure:"label"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// FieldCondition governs dynamic visibility of a field based on another
// field's submitted value. Operator "equals" compares against Value,
// "in" tests membership in Values. Comparisons are stringified.
type FieldCondition struct {
	DependsOn string `json:"dependsOn" yaml:"dependsOn" mapstructure:"dependsOn"`
	Operator  string `json:"operator" yaml:"operator" mapstructure:"operator"`
	Value     any    `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
	Values    []any  `json:"values,omitempty" yaml:"values,omitempty" mapstructure:"values"`
	Action    string `json:"action" yaml:"action" mapstructure:"action"`
}
