package domain

// Cross-field validation types.
const (
	CrossFieldMatch          = "fieldMatch"
	CrossDateRange           = "dateRange"
	CrossNumericComparison   = "numericComparison"
	CrossConditionalRequired = "conditionalRequired"
)

// Cross-field operators. fieldMatch uses equals, dateRange uses lessThan,
// numericComparison one of the four comparisons, conditionalRequired requiredIf.
const (
	OpEquals             = "equals"
	OpLessThan           = "lessThan"
	OpLessThanOrEqual    = "lessThanOrEqual"
	OpGreaterThan        = "greaterThan"
	OpGreaterThanOrEqual = "greaterThanOrEqual"
	OpRequiredIf         = "requiredIf"
)

// DefaultTriggerValue is the conditionalRequired trigger used when a rule
// does not declare one.
const DefaultTriggerValue = "custom"

// CrossFieldValidation is a constraint spanning two declared fields.
// Fields[0] is the first operand (or trigger), Fields[1] the second operand
// (or dependent field). On failure the error attaches to ErrorField when set,
// otherwise to Fields[1].
type CrossFieldValidation struct {
	ValidationType string   `json:"validationType" yaml:"validationType" mapstructure:"validationType"`
	Fields         []string `json:"fields" yaml:"fields" mapstructure:"fields"`
	Operator       string   `json:"operator" yaml:"operator" mapstructure:"operator"`
	ErrorMessage   string   `json:"errorMessage" yaml:"errorMessage" mapstructure:"errorMessage"`
	ErrorField     string   `json:"errorField,omitempty" yaml:"errorField,omitempty" mapstructure:"errorField"`

	// TriggerValue is the comparison value for conditionalRequired rules.
	// Empty means DefaultTriggerValue.
	TriggerValue string `json:"triggerValue,omitempty" yaml:"triggerValue,omitempty" mapstructure:"triggerValue"`
}

// Target returns the field name a failure of this rule attaches to.
func (c CrossFieldValidation) Target() string {
	if c.ErrorField != "" {
		return c.ErrorField
	}
	if len(c.Fields) > 1 {
		return c.Fields[1]
	}
	return ""
}
