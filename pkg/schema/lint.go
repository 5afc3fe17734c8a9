package schema

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/formgate/formgate/pkg/domain"
)

// ruleParamKinds maps each known rule name to the parameter type it expects.
var ruleParamKinds = map[string]domain.ValueKind{
	domain.RuleRequired:     domain.KindBool,
	domain.RuleRequiredTrue: domain.KindBool,
	domain.RuleEmail:        domain.KindBool,
	domain.RuleMinLength:    domain.KindNumber,
	domain.RuleMaxLength:    domain.KindNumber,
	domain.RuleMin:          domain.KindNumber,
	domain.RuleMax:          domain.KindNumber,
	domain.RulePattern:      domain.KindString,
}

// crossOperators maps each cross-validation type to its allowed operators.
var crossOperators = map[string]map[string]bool{
	domain.CrossFieldMatch: {domain.OpEquals: true},
	domain.CrossDateRange:  {domain.OpLessThan: true},
	domain.CrossNumericComparison: {
		domain.OpLessThan:           true,
		domain.OpLessThanOrEqual:    true,
		domain.OpGreaterThan:        true,
		domain.OpGreaterThanOrEqual: true,
	},
	domain.CrossConditionalRequired: {domain.OpRequiredIf: true},
}

// Lint checks the structural invariants of a form configuration: a form id,
// unique non-empty field names, rule parameters of the expected type,
// compilable patterns, visibility conditions referencing declared fields
// without cycles, and well-formed cross-field rules. It returns an
// AggregateError collecting every finding, or nil.
func Lint(cfg *domain.FormConfig) error {
	var errs []error
	finding := func(field, format string, args ...any) {
		errs = append(errs, &SchemaError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if cfg.FormID == "" {
		finding("", "formId must not be empty")
	}

	declared := make(map[string]bool, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if f.Name == "" {
			finding("", "field with empty name")
			continue
		}
		if declared[f.Name] {
			finding(f.Name, "duplicate field name")
		}
		declared[f.Name] = true
	}

	for _, f := range cfg.Fields {
		for _, rule := range f.Validations {
			want, known := ruleParamKinds[rule.Name]
			if !known {
				continue // advisory only, see Warnings
			}
			if rule.Value.Kind != want {
				finding(f.Name, "rule %q wants a %s parameter, got %s", rule.Name, want, rule.Value.Kind)
				continue
			}
			if rule.Name == domain.RulePattern {
				if _, err := regexp2.Compile(rule.Value.Str, regexp2.None); err != nil {
					finding(f.Name, "rule %q has an invalid pattern: %v", rule.Name, err)
				}
			}
		}

		for _, cond := range f.Conditions {
			if cond.DependsOn == "" {
				finding(f.Name, "condition with empty dependsOn")
				continue
			}
			if !declared[cond.DependsOn] {
				finding(f.Name, "condition depends on undeclared field %q", cond.DependsOn)
			}
			switch cond.Operator {
			case domain.ConditionEquals, domain.ConditionIn:
			default:
				finding(f.Name, "condition has unknown operator %q", cond.Operator)
			}
		}
	}

	for _, cycle := range conditionCycles(cfg) {
		finding(cycle, "visibility condition cycle involving this field")
	}

	for i, cross := range cfg.CrossFieldValidations {
		ops, known := crossOperators[cross.ValidationType]
		if !known {
			continue // advisory only, see Warnings
		}
		label := fmt.Sprintf("crossFieldValidations[%d]", i)
		if len(cross.Fields) < 2 {
			finding("", "%s: %s needs at least 2 fields", label, cross.ValidationType)
			continue
		}
		if !ops[cross.Operator] {
			finding("", "%s: operator %q not valid for %s", label, cross.Operator, cross.ValidationType)
		}
		for _, name := range cross.Fields {
			if !declared[name] {
				finding(name, "%s references undeclared field", label)
			}
		}
		if cross.ErrorField != "" && !declared[cross.ErrorField] {
			finding(cross.ErrorField, "%s errorField references undeclared field", label)
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Warnings returns the advisory findings for a configuration: unknown rule
// names and unknown cross-validation types. Evaluation skips both silently;
// authors usually want to know because they are almost always typos.
func Warnings(cfg *domain.FormConfig) []SchemaError {
	var warns []SchemaError
	for _, f := range cfg.Fields {
		for _, rule := range f.Validations {
			if _, known := ruleParamKinds[rule.Name]; !known {
				warns = append(warns, SchemaError{Field: f.Name, Reason: fmt.Sprintf("unknown rule %q is never evaluated", rule.Name)})
			}
		}
	}
	for i, cross := range cfg.CrossFieldValidations {
		if _, known := crossOperators[cross.ValidationType]; !known {
			warns = append(warns, SchemaError{Reason: fmt.Sprintf("crossFieldValidations[%d]: unknown validationType %q is never evaluated", i, cross.ValidationType)})
		}
	}
	return warns
}

// conditionCycles returns the names of fields involved in a dependsOn cycle.
// Visibility evaluation never recurses, so a cycle cannot loop at runtime,
// but it means the author's show/hide intent is unsatisfiable.
func conditionCycles(cfg *domain.FormConfig) []string {
	deps := make(map[string][]string)
	for _, f := range cfg.Fields {
		for _, cond := range f.Conditions {
			deps[f.Name] = append(deps[f.Name], cond.DependsOn)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(deps))
	var cyclic []string

	var visit func(name string)
	visit = func(name string) {
		state[name] = visiting
		for _, dep := range deps[name] {
			switch state[dep] {
			case unvisited:
				visit(dep)
			case visiting:
				// Back edge: dep is on the current path, hence on a cycle.
				cyclic = append(cyclic, dep)
			}
		}
		state[name] = done
	}

	for _, f := range cfg.Fields {
		if state[f.Name] == unvisited {
			visit(f.Name)
		}
	}
	return cyclic
}
