package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule name vocabulary. Unknown names are silently skipped by the evaluator
// (deliberate leniency), but the schema linter reports them to authors.
const (
	RuleRequired     = "required"
	RuleRequiredTrue = "requiredTrue"
	RuleMinLength    = "minLength"
	RuleMaxLength    = "maxLength"
	RuleMin          = "min"
	RuleMax          = "max"
	RuleEmail        = "email"
	RulePattern      = "pattern"
)

// ValidationRule is a single constraint on a field's value. The parameter
// type depends on Name: required/requiredTrue/email carry a bool flag,
// minLength/maxLength/min/max a numeric threshold, pattern a regex string.
type ValidationRule struct {
	Name         string    `json:"name" yaml:"name" mapstructure:"name"`
	Value        RuleValue `json:"value" yaml:"value" mapstructure:"value"`
	ErrorMessage string    `json:"errorMessage" yaml:"errorMessage" mapstructure:"errorMessage"`
}

// ValueKind tags the variant held by a RuleValue.
type ValueKind uint8

const (
	KindAbsent ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindStringList
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindStringList:
		return "string list"
	default:
		return "absent"
	}
}

// RuleValue is the tagged variant holding a rule parameter. Wire formats
// carry the raw scalar (true, 8, "^[a-z]+$"); the variant keeps evaluation
// free of reflection and lets the schema linter check parameter types at
// load time instead of failing at submission time.
type RuleValue struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	Str    string
	List   []string
}

// BoolValue builds a boolean rule parameter.
func BoolValue(b bool) RuleValue { return RuleValue{Kind: KindBool, Bool: b} }

// NumberValue builds a numeric rule parameter.
func NumberValue(n float64) RuleValue { return RuleValue{Kind: KindNumber, Number: n} }

// StringValue builds a string rule parameter.
func StringValue(s string) RuleValue { return RuleValue{Kind: KindString, Str: s} }

// StringListValue builds a string-list rule parameter.
func StringListValue(vs ...string) RuleValue { return RuleValue{Kind: KindStringList, List: vs} }

// IsTrue reports whether the value is the boolean true. Flag rules
// (required, requiredTrue, email) only apply when their parameter is true.
func (v RuleValue) IsTrue() bool { return v.Kind == KindBool && v.Bool }

// AsNumber returns the numeric parameter, if the value holds one.
func (v RuleValue) AsNumber() (float64, bool) { return v.Number, v.Kind == KindNumber }

// AsString returns the string parameter, if the value holds one.
func (v RuleValue) AsString() (string, bool) { return v.Str, v.Kind == KindString }

// RuleValueFrom coerces a dynamically-typed scalar (as produced by JSON or
// YAML unmarshaling) into a RuleValue.
func RuleValueFrom(v any) (RuleValue, error) {
	switch t := v.(type) {
	case nil:
		return RuleValue{}, nil
	case bool:
		return BoolValue(t), nil
	case int:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case float64:
		return NumberValue(t), nil
	case json.Number:
		n, err := t.Float64()
		if err != nil {
			return RuleValue{}, fmt.Errorf("rule value %q is not a number: %w", t.String(), err)
		}
		return NumberValue(n), nil
	case string:
		return StringValue(t), nil
	case []string:
		return StringListValue(t...), nil
	case []any:
		list := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return RuleValue{}, fmt.Errorf("rule value list element %v is %T, want string", e, e)
			}
			list = append(list, s)
		}
		return StringListValue(list...), nil
	default:
		return RuleValue{}, fmt.Errorf("unsupported rule value type %T", v)
	}
}

// raw returns the untagged scalar used on the wire.
func (v RuleValue) raw() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Number
	case KindString:
		return v.Str
	case KindStringList:
		return v.List
	default:
		return nil
	}
}

// MarshalJSON emits the raw scalar form.
func (v RuleValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw())
}

// UnmarshalJSON accepts any scalar (or string list) and tags it.
func (v *RuleValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := RuleValueFrom(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML emits the raw scalar form.
func (v RuleValue) MarshalYAML() (any, error) {
	return v.raw(), nil
}

// UnmarshalYAML accepts any scalar (or string list) and tags it.
func (v *RuleValue) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := RuleValueFrom(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
