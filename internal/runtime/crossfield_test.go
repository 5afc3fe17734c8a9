package runtime

import (
	"testing"

	"github.com/formgate/formgate/pkg/domain"
)

func TestApplyCrossFieldRule(t *testing.T) {
	match := domain.CrossFieldValidation{
		ValidationType: domain.CrossFieldMatch,
		Fields:         []string{"password", "confirm"},
		Operator:       domain.OpEquals,
		ErrorMessage:   "no match",
		ErrorField:     "confirm",
	}
	dates := domain.CrossFieldValidation{
		ValidationType: domain.CrossDateRange,
		Fields:         []string{"start", "end"},
		Operator:       domain.OpLessThan,
		ErrorMessage:   "bad range",
		ErrorField:     "end",
	}
	budget := domain.CrossFieldValidation{
		ValidationType: domain.CrossNumericComparison,
		Fields:         []string{"min", "max"},
		Operator:       domain.OpLessThanOrEqual,
		ErrorMessage:   "bad budget",
		ErrorField:     "max",
	}
	conditional := domain.CrossFieldValidation{
		ValidationType: domain.CrossConditionalRequired,
		Fields:         []string{"type", "details"},
		Operator:       domain.OpRequiredIf,
		ErrorMessage:   "details required",
		ErrorField:     "details",
		TriggerValue:   "custom",
	}

	tests := []struct {
		name    string
		rule    domain.CrossFieldValidation
		data    map[string]any
		wantMsg string
	}{
		{"match equal", match, map[string]any{"password": "s3cret", "confirm": "s3cret"}, ""},
		{"match differ", match, map[string]any{"password": "s3cret", "confirm": "other"}, "no match"},
		{"match missing operand fails", match, map[string]any{"password": "s3cret"}, "no match"},
		{"match null operand fails", match, map[string]any{"password": "s3cret", "confirm": nil}, "no match"},
		{"match coerces types", match, map[string]any{"password": 42, "confirm": "42"}, ""},

		{"dates ordered", dates, map[string]any{"start": "2026-01-01", "end": "2026-02-01"}, ""},
		{"dates equal fail", dates, map[string]any{"start": "2026-01-01", "end": "2026-01-01"}, "bad range"},
		{"dates reversed", dates, map[string]any{"start": "2026-03-01", "end": "2026-02-01"}, "bad range"},
		{"dates missing skipped", dates, map[string]any{"start": "2026-01-01"}, ""},
		{"dates unparseable", dates, map[string]any{"start": "01/02/2026", "end": "2026-02-01"}, "Invalid date format"},

		{"budget ordered", budget, map[string]any{"min": 10, "max": 20}, ""},
		{"budget equal ok", budget, map[string]any{"min": 10, "max": 10}, ""},
		{"budget reversed", budget, map[string]any{"min": 30, "max": 20}, "bad budget"},
		{"budget string numbers", budget, map[string]any{"min": "30", "max": "20"}, "bad budget"},
		{"budget missing skipped", budget, map[string]any{"max": 20}, ""},
		{"budget unparseable", budget, map[string]any{"min": "ten", "max": 20}, "Invalid number format"},

		{"conditional triggered blank", conditional, map[string]any{"type": "custom", "details": " "}, "details required"},
		{"conditional triggered filled", conditional, map[string]any{"type": "custom", "details": "clause"}, ""},
		{"conditional not triggered", conditional, map[string]any{"type": "standard"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyCrossFieldRule(tt.rule, tt.data)
			if tt.wantMsg == "" {
				if got != nil {
					t.Fatalf("ApplyCrossFieldRule() = %+v, want pass", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("ApplyCrossFieldRule() passed, want %q", tt.wantMsg)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", got.Message, tt.wantMsg)
			}
			if got.Field != tt.rule.ErrorField {
				t.Errorf("field = %q, want %q", got.Field, tt.rule.ErrorField)
			}
			if got.ValidationType != domain.ErrorTypeCrossField {
				t.Errorf("validationType = %q, want %q", got.ValidationType, domain.ErrorTypeCrossField)
			}
		})
	}
}

func TestCrossFieldRuleNoOps(t *testing.T) {
	data := map[string]any{"a": "x", "b": "y"}

	short := domain.CrossFieldValidation{ValidationType: domain.CrossFieldMatch, Fields: []string{"a"}}
	if got := ApplyCrossFieldRule(short, data); got != nil {
		t.Errorf("rule with one field = %+v, want nil", got)
	}

	unknown := domain.CrossFieldValidation{ValidationType: "phaseOfMoon", Fields: []string{"a", "b"}}
	if got := ApplyCrossFieldRule(unknown, data); got != nil {
		t.Errorf("unknown validationType = %+v, want nil", got)
	}

	badOp := domain.CrossFieldValidation{
		ValidationType: domain.CrossNumericComparison,
		Fields:         []string{"a", "b"},
		Operator:       "spaceship",
	}
	if got := ApplyCrossFieldRule(badOp, map[string]any{"a": 1, "b": 2}); got != nil {
		t.Errorf("unknown operator = %+v, want nil", got)
	}
}

func TestCrossFieldErrorFieldDefaultsToSecond(t *testing.T) {
	rule := domain.CrossFieldValidation{
		ValidationType: domain.CrossFieldMatch,
		Fields:         []string{"password", "confirm"},
		Operator:       domain.OpEquals,
		ErrorMessage:   "no match",
	}
	got := ApplyCrossFieldRule(rule, map[string]any{"password": "a", "confirm": "b"})
	if got == nil {
		t.Fatal("expected a failure")
	}
	if got.Field != "confirm" {
		t.Errorf("field = %q, want the second operand", got.Field)
	}
}

func TestConditionalRequiredDefaultTrigger(t *testing.T) {
	rule := domain.CrossFieldValidation{
		ValidationType: domain.CrossConditionalRequired,
		Fields:         []string{"type", "details"},
		Operator:       domain.OpRequiredIf,
		ErrorMessage:   "details required",
	}
	got := ApplyCrossFieldRule(rule, map[string]any{"type": "custom"})
	if got == nil {
		t.Fatal("empty triggerValue should default to \"custom\"")
	}
}
