package runtime

import (
	"testing"

	"github.com/formgate/formgate/pkg/domain"
)

func TestIsVisible(t *testing.T) {
	equalsStudent := domain.FieldCondition{
		DependsOn: "status",
		Operator:  domain.ConditionEquals,
		Value:     "student",
		Action:    domain.ConditionActionShow,
	}
	inEmployed := domain.FieldCondition{
		DependsOn: "status",
		Operator:  domain.ConditionIn,
		Values:    []any{"employed", "self-employed"},
		Action:    domain.ConditionActionShow,
	}
	equalsTrue := domain.FieldCondition{
		DependsOn: "hasExperience",
		Operator:  domain.ConditionEquals,
		Value:     true,
		Action:    domain.ConditionActionShow,
	}

	tests := []struct {
		name  string
		field domain.FormField
		data  map[string]any
		want  bool
	}{
		{"no conditions", domain.FormField{Name: "f"}, nil, true},
		{"equals holds", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{equalsStudent}}, map[string]any{"status": "student"}, true},
		{"equals fails", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{equalsStudent}}, map[string]any{"status": "employed"}, false},
		{"equals dependency missing", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{equalsStudent}}, map[string]any{}, false},
		{"in holds", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{inEmployed}}, map[string]any{"status": "self-employed"}, true},
		{"in fails", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{inEmployed}}, map[string]any{"status": "student"}, false},
		{"bool coerced to string", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{equalsTrue}}, map[string]any{"hasExperience": "true"}, true},
		{"any of several suffices", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{equalsStudent, inEmployed}}, map[string]any{"status": "employed"}, true},
		{"non-show action ignored", domain.FormField{Name: "f", Conditions: []domain.FieldCondition{{
			DependsOn: "status", Operator: domain.ConditionEquals, Value: "student", Action: "hide",
		}}}, map[string]any{"status": "student"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVisible(tt.field, tt.data); got != tt.want {
				t.Errorf("IsVisible() = %v, want %v", got, tt.want)
			}
		})
	}
}
