package domain_test

import (
	"testing"
	"time"

	"github.com/formgate/formgate/pkg/domain"
)

func TestFormConfigCloneIsDeep(t *testing.T) {
	original := &domain.FormConfig{
		FormID: "signup",
		Fields: []domain.FormField{
			{
				Name: "email",
				Validations: []domain.ValidationRule{
					{Name: domain.RuleRequired, Value: domain.BoolValue(true)},
				},
				Options:    []domain.SelectOption{{Label: "Yes", Value: "yes"}},
				Attributes: map[string]any{"rows": 4},
				Conditions: []domain.FieldCondition{
					{DependsOn: "plan", Operator: domain.ConditionIn, Values: []any{"pro"}, Action: domain.ConditionActionShow},
				},
			},
			{Name: "plan"},
		},
		CrossFieldValidations: []domain.CrossFieldValidation{
			{ValidationType: domain.CrossFieldMatch, Fields: []string{"email", "plan"}, Operator: domain.OpEquals},
		},
	}

	clone := original.Clone()

	original.Fields[0].Name = "mutated"
	original.Fields[0].Validations[0].Name = "mutated"
	original.Fields[0].Options[0].Value = "mutated"
	original.Fields[0].Attributes["rows"] = 99
	original.Fields[0].Conditions[0].Values[0] = "mutated"
	original.CrossFieldValidations[0].Fields[0] = "mutated"

	f := clone.Fields[0]
	if f.Name != "email" || f.Validations[0].Name != domain.RuleRequired {
		t.Error("field or rule shared with original")
	}
	if f.Options[0].Value != "yes" {
		t.Error("options shared with original")
	}
	if f.Attributes["rows"] != 4 {
		t.Error("attributes shared with original")
	}
	if f.Conditions[0].Values[0] != "pro" {
		t.Error("condition values shared with original")
	}
	if clone.CrossFieldValidations[0].Fields[0] != "email" {
		t.Error("cross-field names shared with original")
	}
}

func TestFormSchemaCloneIsDeep(t *testing.T) {
	original := &domain.FormSchema{
		SchemaID:   "abc",
		SchemaName: "signup",
		Tags:       []string{"seed"},
		CreatedAt:  time.Now(),
		FormConfig: domain.FormConfig{FormID: "signup"},
	}

	clone := original.Clone()
	original.Tags[0] = "mutated"
	original.FormConfig.FormID = "mutated"

	if clone.Tags[0] != "seed" {
		t.Error("tags shared with original")
	}
	if clone.FormConfig.FormID != "signup" {
		t.Error("config shared with original")
	}
}

func TestCloneNilReceivers(t *testing.T) {
	var schema *domain.FormSchema
	if schema.Clone() != nil {
		t.Error("nil schema clone should be nil")
	}
	var cfg *domain.FormConfig
	if cfg.Clone() != nil {
		t.Error("nil config clone should be nil")
	}
}
