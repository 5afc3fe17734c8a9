package formgate_test

import (
	"context"
	"fmt"

	"github.com/formgate/formgate"
	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/domain"
)

// ExampleNew validates a submission against one of the built-in forms.
func ExampleNew() {
	eng := formgate.New()

	result := eng.Validate(context.Background(), "contact", map[string]any{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"subject": "general",
		"message": "I have a question about the analytical engine.",
	})

	fmt.Println(result.Valid, result.Message)
	// Output: true Form is valid
}

// ExampleEngine_Validate shows a custom form definition supplied through an
// in-memory source, and the errors an invalid payload produces.
func ExampleEngine_Validate() {
	source, _ := memory.NewSource(&domain.FormConfig{
		FormID: "signup",
		Fields: []domain.FormField{
			{
				Name: "email",
				Validations: []domain.ValidationRule{
					{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: "Email is required"},
					{Name: domain.RuleEmail, Value: domain.BoolValue(true), ErrorMessage: "Enter a valid email"},
				},
			},
		},
	})

	eng := formgate.New(formgate.WithSource(source))
	result := eng.Validate(context.Background(), "signup", map[string]any{
		"email": "not-an-address",
	})

	for _, e := range result.Errors {
		fmt.Printf("%s: %s\n", e.Field, e.Message)
	}
	// Output: email: Enter a valid email
}
