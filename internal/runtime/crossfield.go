package runtime

import (
	"time"

	"github.com/formgate/formgate/pkg/domain"
)

// msgInvalidDate is returned instead of the rule's own message when an
// operand cannot be parsed as an ISO-8601 calendar date.
const msgInvalidDate = "Invalid date format"

const dateLayout = "2006-01-02"

// ApplyCrossFieldRule applies one cross-field rule to the payload and returns
// at most one error. Rules with fewer than two fields and rules of unknown
// validationType are no-ops.
func ApplyCrossFieldRule(rule domain.CrossFieldValidation, data map[string]any) *domain.ValidationError {
	if len(rule.Fields) < 2 {
		return nil
	}

	switch rule.ValidationType {
	case domain.CrossFieldMatch:
		return applyFieldMatch(rule, data)
	case domain.CrossDateRange:
		return applyDateRange(rule, data)
	case domain.CrossNumericComparison:
		return applyNumericComparison(rule, data)
	case domain.CrossConditionalRequired:
		return applyConditionalRequired(rule, data)
	default:
		return nil
	}
}

func crossFail(rule domain.CrossFieldValidation, message string) *domain.ValidationError {
	e := domain.CrossFieldError(rule.Target(), message)
	return &e
}

// applyFieldMatch fails when either operand is missing or the stringified
// values differ.
func applyFieldMatch(rule domain.CrossFieldValidation, data map[string]any) *domain.ValidationError {
	first, second := rule.Fields[0], rule.Fields[1]
	if isMissing(data, first) || isMissing(data, second) {
		return crossFail(rule, rule.ErrorMessage)
	}
	if stringify(data[first]) != stringify(data[second]) {
		return crossFail(rule, rule.ErrorMessage)
	}
	return nil
}

// applyDateRange checks that the first date strictly precedes the second.
// Missing operands are skipped; presence is the job of field-level required
// rules. Unparseable operands yield the fixed parse-error message.
func applyDateRange(rule domain.CrossFieldValidation, data map[string]any) *domain.ValidationError {
	first, second := rule.Fields[0], rule.Fields[1]
	if isMissing(data, first) || isMissing(data, second) {
		return nil
	}

	start, err := time.Parse(dateLayout, stringify(data[first]))
	if err != nil {
		return crossFail(rule, msgInvalidDate)
	}
	end, err := time.Parse(dateLayout, stringify(data[second]))
	if err != nil {
		return crossFail(rule, msgInvalidDate)
	}

	if rule.Operator == domain.OpLessThan && !start.Before(end) {
		return crossFail(rule, rule.ErrorMessage)
	}
	return nil
}

// applyNumericComparison parses both operands as floats and applies the named
// comparison. Missing operands are skipped; unparseable operands yield the
// fixed parse-error message. Unknown operators are no-ops.
func applyNumericComparison(rule domain.CrossFieldValidation, data map[string]any) *domain.ValidationError {
	first, second := rule.Fields[0], rule.Fields[1]
	if isMissing(data, first) || isMissing(data, second) {
		return nil
	}

	a, err := parseNumber(data[first])
	if err != nil {
		return crossFail(rule, msgInvalidNumber)
	}
	b, err := parseNumber(data[second])
	if err != nil {
		return crossFail(rule, msgInvalidNumber)
	}

	holds := true
	switch rule.Operator {
	case domain.OpLessThan:
		holds = a < b
	case domain.OpLessThanOrEqual:
		holds = a <= b
	case domain.OpGreaterThan:
		holds = a > b
	case domain.OpGreaterThanOrEqual:
		holds = a >= b
	}
	if !holds {
		return crossFail(rule, rule.ErrorMessage)
	}
	return nil
}

// applyConditionalRequired makes the dependent field (Fields[1]) mandatory
// when the trigger field (Fields[0]) holds the rule's trigger value.
func applyConditionalRequired(rule domain.CrossFieldValidation, data map[string]any) *domain.ValidationError {
	trigger := rule.TriggerValue
	if trigger == "" {
		trigger = domain.DefaultTriggerValue
	}
	if stringify(data[rule.Fields[0]]) == trigger && isBlank(data[rule.Fields[1]]) {
		return crossFail(rule, rule.ErrorMessage)
	}
	return nil
}
