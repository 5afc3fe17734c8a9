package runtime

import "github.com/formgate/formgate/pkg/domain"

// IsVisible reports whether a field is currently shown given the payload.
// A field with no conditions is always visible; otherwise any one "show"
// condition that holds makes it visible (OR semantics).
func IsVisible(field domain.FormField, data map[string]any) bool {
	if len(field.Conditions) == 0 {
		return true
	}
	for _, c := range field.Conditions {
		if c.Action != domain.ConditionActionShow {
			continue
		}
		if conditionHolds(c, data) {
			return true
		}
	}
	return false
}

// conditionHolds evaluates a single visibility condition. Comparisons are
// stringified so a boolean true in the payload matches a "true" operand.
func conditionHolds(c domain.FieldCondition, data map[string]any) bool {
	actual := stringify(data[c.DependsOn])
	switch c.Operator {
	case domain.ConditionEquals:
		return actual == stringify(c.Value)
	case domain.ConditionIn:
		for _, candidate := range c.Values {
			if actual == stringify(candidate) {
				return true
			}
		}
	}
	return false
}
