package runtime

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/formgate/formgate/pkg/domain"
	"github.com/formgate/formgate/pkg/ports"
)

func testForm() *domain.FormConfig {
	return &domain.FormConfig{
		FormID: "signup",
		Fields: []domain.FormField{
			{
				Name: "email",
				Validations: []domain.ValidationRule{
					{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Email is required"},
					{Name: domain.RuleEmail, Value: domain.BoolValue(true), ErrorMessage: "Bad email"},
				},
			},
			{
				Name: "password",
				Validations: []domain.ValidationRule{
					{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Password is required"},
					{Name: domain.RuleMinLength, Value: domain.NumberValue(8), ErrorMessage: "Password too short"},
				},
			},
			{
				Name:   "companyName",
				Hidden: true,
				Conditions: []domain.FieldCondition{
					{DependsOn: "employed", Operator: domain.ConditionEquals, Value: true, Action: domain.ConditionActionShow},
				},
				Validations: []domain.ValidationRule{
					{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Company is required"},
				},
			},
		},
		CrossFieldValidations: []domain.CrossFieldValidation{
			{
				ValidationType: domain.CrossFieldMatch,
				Fields:         []string{"password", "confirmPassword"},
				Operator:       domain.OpEquals,
				ErrorMessage:   "Passwords do not match",
				ErrorField:     "confirmPassword",
			},
		},
	}
}

func testSource(t *testing.T) ports.FormSource {
	t.Helper()
	return ports.FormSourceFunc(func(ctx context.Context, formID string) (*domain.FormConfig, error) {
		if formID != "signup" {
			return nil, domain.ErrFormNotFound
		}
		return testForm(), nil
	})
}

func TestValidateAccepts(t *testing.T) {
	engine := NewEngine(testSource(t), WithVisibilityGating())

	got := engine.Validate(context.Background(), domain.Submission{
		FormID: "signup",
		Data: map[string]any{
			"email":           "a@example.com",
			"password":        "longenough",
			"confirmPassword": "longenough",
		},
	})

	want := domain.ValidationResult{
		Valid:   true,
		Errors:  []domain.ValidationError{},
		Message: domain.MessageValid,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateCollectsInOrder(t *testing.T) {
	engine := NewEngine(testSource(t), WithVisibilityGating())

	got := engine.Validate(context.Background(), domain.Submission{
		FormID: "signup",
		Data: map[string]any{
			"email":           "nope",
			"password":        "short",
			"confirmPassword": "different",
		},
	})

	want := domain.ValidationResult{
		Valid: false,
		Errors: []domain.ValidationError{
			domain.FieldError("email", "Bad email"),
			domain.FieldError("password", "Password too short"),
			domain.CrossFieldError("confirmPassword", "Passwords do not match"),
		},
		Message: domain.MessageInvalid,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateUnknownForm(t *testing.T) {
	engine := NewEngine(testSource(t))

	got := engine.Validate(context.Background(), domain.Submission{FormID: "nope"})

	want := domain.ValidationResult{
		Valid: false,
		Errors: []domain.ValidationError{
			domain.SystemError("formId", "Form configuration not found"),
		},
		Message: domain.MessageInvalid,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateSourceFailure(t *testing.T) {
	boom := errors.New("backend down")
	engine := NewEngine(ports.FormSourceFunc(func(ctx context.Context, formID string) (*domain.FormConfig, error) {
		return nil, boom
	}))

	got := engine.Validate(context.Background(), domain.Submission{FormID: "signup"})
	if got.Valid {
		t.Fatal("expected an invalid result")
	}
	if len(got.Errors) != 1 || got.Errors[0].ValidationType != domain.ErrorTypeSystem {
		t.Fatalf("errors = %+v, want a single system error", got.Errors)
	}
	if got.Errors[0].Message == "Form configuration not found" {
		t.Error("backend failures must not masquerade as a missing form")
	}
}

func TestValidateHiddenFieldGating(t *testing.T) {
	sub := domain.Submission{
		FormID: "signup",
		Data: map[string]any{
			"email":           "a@example.com",
			"password":        "longenough",
			"confirmPassword": "longenough",
			// employed not set, companyName hidden and empty
		},
	}

	gated := NewEngine(testSource(t), WithVisibilityGating()).Validate(context.Background(), sub)
	if !gated.Valid {
		t.Errorf("gated engine should skip the hidden companyName field, got %+v", gated.Errors)
	}

	ungated := NewEngine(testSource(t)).Validate(context.Background(), sub)
	if ungated.Valid {
		t.Error("default engine validates hidden fields too")
	}
	found := false
	for _, e := range ungated.Errors {
		if e.Field == "companyName" {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %+v, want one for companyName", ungated.Errors)
	}
}

func TestValidateEmptyDataMap(t *testing.T) {
	engine := NewEngine(testSource(t), WithVisibilityGating())

	got := engine.Validate(context.Background(), domain.Submission{FormID: "signup", Data: nil})
	if got.Valid {
		t.Fatal("expected required failures")
	}
	want := []domain.ValidationError{
		domain.FieldError("email", "Email is required"),
		domain.FieldError("password", "Password is required"),
		domain.CrossFieldError("confirmPassword", "Passwords do not match"),
	}
	if diff := cmp.Diff(want, got.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}
