package runtime

import (
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/formgate/formgate/pkg/domain"
)

// msgInvalidNumber is returned instead of the rule's own message when a
// submitted value cannot be parsed as a number.
const msgInvalidNumber = "Invalid number format"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ApplyRule applies one validation rule to one field's value and returns at
// most one error. Unknown rule names are silently ignored, and a rule whose
// parameter does not have the expected type is skipped; the schema linter
// reports both conditions to authors at load time.
//
// Presence semantics: nil, absent and whitespace-only string values count as
// absent. Rules other than required/requiredTrue never fire on absent values.
func ApplyRule(fieldName string, value any, rule domain.ValidationRule) *domain.ValidationError {
	fail := func(message string) *domain.ValidationError {
		e := domain.FieldError(fieldName, message)
		return &e
	}

	switch rule.Name {
	case domain.RuleRequired:
		if rule.Value.IsTrue() && isBlank(value) {
			return fail(rule.ErrorMessage)
		}

	case domain.RuleRequiredTrue:
		if rule.Value.IsTrue() {
			if b, ok := value.(bool); !ok || !b {
				return fail(rule.ErrorMessage)
			}
		}

	case domain.RuleMinLength:
		min, ok := rule.Value.AsNumber()
		if ok && !isBlank(value) && len([]rune(stringify(value))) < int(min) {
			return fail(rule.ErrorMessage)
		}

	case domain.RuleMaxLength:
		max, ok := rule.Value.AsNumber()
		if ok && !isBlank(value) && len([]rune(stringify(value))) > int(max) {
			return fail(rule.ErrorMessage)
		}

	case domain.RuleMin:
		min, ok := rule.Value.AsNumber()
		if ok && !isBlank(value) {
			n, err := parseNumber(value)
			if err != nil {
				return fail(msgInvalidNumber)
			}
			if n < min {
				return fail(rule.ErrorMessage)
			}
		}

	case domain.RuleMax:
		max, ok := rule.Value.AsNumber()
		if ok && !isBlank(value) {
			n, err := parseNumber(value)
			if err != nil {
				return fail(msgInvalidNumber)
			}
			if n > max {
				return fail(rule.ErrorMessage)
			}
		}

	case domain.RuleEmail:
		if rule.Value.IsTrue() && !isBlank(value) && !emailPattern.MatchString(stringify(value)) {
			return fail(rule.ErrorMessage)
		}

	case domain.RulePattern:
		pattern, ok := rule.Value.AsString()
		if ok && !isBlank(value) && !fullMatch(pattern, stringify(value)) {
			return fail(rule.ErrorMessage)
		}
	}

	return nil
}

// fullMatch tests the whole value against the pattern. Patterns use regexp2
// so schemas written against Java/JavaScript engines keep working (the
// built-in password rule relies on lookaheads, which RE2 rejects).
// An uncompilable pattern matches everything; the linter flags it upstream.
func fullMatch(pattern, value string) bool {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		return true
	}
	ok, err := re.MatchString(value)
	if err != nil {
		return true
	}
	return ok
}
