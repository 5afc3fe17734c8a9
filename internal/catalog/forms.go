package catalog

import "github.com/formgate/formgate/pkg/domain"

// Rule literal helpers; every built-in form is plain value construction.

func required(msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleRequired, Value: domain.BoolValue(true), ErrorMessage: msg}
}

func requiredTrue(msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleRequiredTrue, Value: domain.BoolValue(true), ErrorMessage: msg}
}

func minLength(n float64, msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleMinLength, Value: domain.NumberValue(n), ErrorMessage: msg}
}

func maxLength(n float64, msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleMaxLength, Value: domain.NumberValue(n), ErrorMessage: msg}
}

func minValue(n float64, msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleMin, Value: domain.NumberValue(n), ErrorMessage: msg}
}

func maxValue(n float64, msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleMax, Value: domain.NumberValue(n), ErrorMessage: msg}
}

func email(msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RuleEmail, Value: domain.BoolValue(true), ErrorMessage: msg}
}

func pattern(expr, msg string) domain.ValidationRule {
	return domain.ValidationRule{Name: domain.RulePattern, Value: domain.StringValue(expr), ErrorMessage: msg}
}

const phonePattern = `^[+]?[(]?[0-9]{1,4}[)]?[-\s\.]?[(]?[0-9]{1,4}[)]?[-\s\.]?[0-9]{1,9}$`

// Registration is the user registration form.
func Registration() *domain.FormConfig {
	return &domain.FormConfig{
		FormID:           "user-registration",
		FormTitle:        "User Registration",
		FormDescription:  "Please fill out the form to create your account",
		SubmitButtonText: "Register",
		CancelButtonText: "Cancel",
		Fields: []domain.FormField{
			{
				Name:        "username",
				Label:       "Username",
				ControlType: domain.ControlInput,
				InputType:   "text",
				Placeholder: "Enter your username",
				Order:       1,
				Validations: []domain.ValidationRule{
					required("Username is required"),
					minLength(4, "Username must be at least 4 characters"),
					maxLength(20, "Username cannot exceed 20 characters"),
					pattern(`^[a-zA-Z0-9_]+$`, "Username can only contain letters, numbers, and underscores"),
				},
			},
			{
				Name:        "email",
				Label:       "Email Address",
				ControlType: domain.ControlInput,
				InputType:   "email",
				Placeholder: "your.email@example.com",
				Order:       2,
				Validations: []domain.ValidationRule{
					required("Email is required"),
					email("Please enter a valid email address"),
				},
			},
			{
				Name:        "password",
				Label:       "Password",
				ControlType: domain.ControlInput,
				InputType:   "password",
				Placeholder: "Enter a strong password",
				Order:       3,
				Validations: []domain.ValidationRule{
					required("Password is required"),
					minLength(8, "Password must be at least 8 characters"),
					pattern(`^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]+$`,
						"Password must contain uppercase, lowercase, number, and special character"),
				},
			},
			{
				Name:        "phone",
				Label:       "Phone Number",
				ControlType: domain.ControlInput,
				InputType:   "tel",
				Placeholder: "+1 (555) 123-4567",
				Order:       4,
				Validations: []domain.ValidationRule{
					required("Phone number is required"),
					pattern(phonePattern, "Please enter a valid phone number"),
				},
			},
			{
				Name:        "age",
				Label:       "Age",
				ControlType: domain.ControlInput,
				InputType:   "number",
				Placeholder: "Enter your age",
				Order:       5,
				Validations: []domain.ValidationRule{
					required("Age is required"),
					minValue(18, "You must be at least 18 years old"),
					maxValue(120, "Please enter a valid age"),
				},
			},
			{
				Name:        "gender",
				Label:       "Gender",
				ControlType: domain.ControlRadio,
				Order:       6,
				Options: []domain.SelectOption{
					{Label: "Male", Value: "male"},
					{Label: "Female", Value: "female"},
					{Label: "Other", Value: "other"},
					{Label: "Prefer not to say", Value: "not_specified"},
				},
				Validations: []domain.ValidationRule{
					required("Please select your gender"),
				},
			},
			{
				Name:        "country",
				Label:       "Country",
				ControlType: domain.ControlSelect,
				Placeholder: "Select your country",
				Order:       7,
				Options: []domain.SelectOption{
					{Label: "United States", Value: "US"},
					{Label: "United Kingdom", Value: "UK"},
					{Label: "Canada", Value: "CA"},
					{Label: "Australia", Value: "AU"},
					{Label: "India", Value: "IN"},
					{Label: "Germany", Value: "DE"},
					{Label: "France", Value: "FR"},
				},
				Validations: []domain.ValidationRule{
					required("Please select your country"),
				},
			},
			{
				Name:        "bio",
				Label:       "Bio",
				ControlType: domain.ControlTextarea,
				Placeholder: "Tell us about yourself...",
				Order:       8,
				Attributes:  map[string]any{"rows": 4, "cols": 50},
				Validations: []domain.ValidationRule{
					maxLength(500, "Bio cannot exceed 500 characters"),
				},
			},
			{
				Name:        "terms",
				Label:       "I agree to the Terms and Conditions",
				ControlType: domain.ControlCheckbox,
				Order:       9,
				Validations: []domain.ValidationRule{
					requiredTrue("You must accept the terms and conditions"),
				},
			},
		},
	}
}

// Contact is the contact-us form.
func Contact() *domain.FormConfig {
	return &domain.FormConfig{
		FormID:           "contact-form",
		FormTitle:        "Contact Us",
		FormDescription:  "We'd love to hear from you",
		SubmitButtonText: "Send Message",
		CancelButtonText: "Clear",
		Fields: []domain.FormField{
			{
				Name:        "name",
				Label:       "Full Name",
				ControlType: domain.ControlInput,
				InputType:   "text",
				Placeholder: "Enter your full name",
				Order:       1,
				Validations: []domain.ValidationRule{
					required("Name is required"),
					minLength(3, "Name must be at least 3 characters"),
				},
			},
			{
				Name:        "email",
				Label:       "Email Address",
				ControlType: domain.ControlInput,
				InputType:   "email",
				Placeholder: "your.email@example.com",
				Order:       2,
				Validations: []domain.ValidationRule{
					required("Email is required"),
					email("Please enter a valid email address"),
				},
			},
			{
				Name:        "subject",
				Label:       "Subject",
				ControlType: domain.ControlSelect,
				Placeholder: "Select a subject",
				Order:       3,
				Options: []domain.SelectOption{
					{Label: "General Inquiry", Value: "general"},
					{Label: "Technical Support", Value: "support"},
					{Label: "Billing Question", Value: "billing"},
					{Label: "Feedback", Value: "feedback"},
				},
				Validations: []domain.ValidationRule{
					required("Please select a subject"),
				},
			},
			{
				Name:        "message",
				Label:       "Message",
				ControlType: domain.ControlTextarea,
				Placeholder: "Type your message here...",
				Order:       4,
				Attributes:  map[string]any{"rows": 5},
				Validations: []domain.ValidationRule{
					required("Message is required"),
					minLength(10, "Message must be at least 10 characters"),
					maxLength(500, "Message cannot exceed 500 characters"),
				},
			},
		},
	}
}

// Conditional demonstrates dynamic field visibility.
func Conditional() *domain.FormConfig {
	return &domain.FormConfig{
		FormID:           "conditional-form",
		FormTitle:        "Conditional Fields Example",
		FormDescription:  "Form demonstrating conditional field visibility",
		SubmitButtonText: "Submit",
		CancelButtonText: "Cancel",
		Fields: []domain.FormField{
			{
				Name:        "employmentStatus",
				Label:       "Employment Status",
				ControlType: domain.ControlSelect,
				Placeholder: "Select your employment status",
				Order:       1,
				Options: []domain.SelectOption{
					{Label: "Employed", Value: "employed"},
					{Label: "Self-Employed", Value: "self-employed"},
					{Label: "Unemployed", Value: "unemployed"},
					{Label: "Student", Value: "student"},
				},
				Validations: []domain.ValidationRule{
					required("Employment status is required"),
				},
			},
			{
				Name:        "companyName",
				Label:       "Company Name",
				ControlType: domain.ControlInput,
				InputType:   "text",
				Placeholder: "Enter company name",
				Order:       2,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "employmentStatus",
						Operator:  domain.ConditionIn,
						Values:    []any{"employed", "self-employed"},
						Action:    domain.ConditionActionShow,
					},
				},
				Validations: []domain.ValidationRule{
					required("Company name is required"),
				},
			},
			{
				Name:        "universityName",
				Label:       "University Name",
				ControlType: domain.ControlInput,
				InputType:   "text",
				Placeholder: "Enter university name",
				Order:       3,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "employmentStatus",
						Operator:  domain.ConditionEquals,
						Value:     "student",
						Action:    domain.ConditionActionShow,
					},
				},
				Validations: []domain.ValidationRule{
					required("University name is required"),
				},
			},
			{
				Name:        "hasExperience",
				Label:       "Do you have previous experience?",
				ControlType: domain.ControlCheckbox,
				Order:       4,
			},
			{
				Name:        "yearsExperience",
				Label:       "Years of Experience",
				ControlType: domain.ControlInput,
				InputType:   "number",
				Placeholder: "Enter years of experience",
				Order:       5,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "hasExperience",
						Operator:  domain.ConditionEquals,
						Value:     true,
						Action:    domain.ConditionActionShow,
					},
				},
				Validations: []domain.ValidationRule{
					required("Years of experience is required"),
					minValue(0, "Years cannot be negative"),
				},
			},
			{
				Name:        "contactMethod",
				Label:       "Preferred Contact Method",
				ControlType: domain.ControlRadio,
				Order:       6,
				Options: []domain.SelectOption{
					{Label: "Email", Value: "email"},
					{Label: "Phone", Value: "phone"},
					{Label: "SMS", Value: "sms"},
				},
				Validations: []domain.ValidationRule{
					required("Please select a contact method"),
				},
			},
			{
				Name:        "phoneNumber",
				Label:       "Phone Number",
				ControlType: domain.ControlInput,
				InputType:   "tel",
				Placeholder: "+1 (555) 123-4567",
				Order:       7,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "contactMethod",
						Operator:  domain.ConditionIn,
						Values:    []any{"phone", "sms"},
						Action:    domain.ConditionActionShow,
					},
				},
				Validations: []domain.ValidationRule{
					required("Phone number is required"),
					pattern(phonePattern, "Please enter a valid phone number"),
				},
			},
			{
				Name:        "emailAddress",
				Label:       "Email Address",
				ControlType: domain.ControlInput,
				InputType:   "email",
				Placeholder: "your.email@example.com",
				Order:       8,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "contactMethod",
						Operator:  domain.ConditionEquals,
						Value:     "email",
						Action:    domain.ConditionActionShow,
					},
				},
				Validations: []domain.ValidationRule{
					required("Email is required"),
					email("Please enter a valid email address"),
				},
			},
		},
	}
}

// CrossValidation demonstrates every cross-field rule type.
func CrossValidation() *domain.FormConfig {
	return &domain.FormConfig{
		FormID:           "cross-field-validation-form",
		FormTitle:        "Cross-Field Validation Example",
		FormDescription:  "Form demonstrating cross-field validations",
		SubmitButtonText: "Submit",
		CancelButtonText: "Cancel",
		Fields: []domain.FormField{
			{
				Name:        "password",
				Label:       "Password",
				ControlType: domain.ControlInput,
				InputType:   "password",
				Placeholder: "Enter password",
				Order:       1,
				Validations: []domain.ValidationRule{
					required("Password is required"),
					minLength(8, "Password must be at least 8 characters"),
				},
			},
			{
				Name:        "confirmPassword",
				Label:       "Confirm Password",
				ControlType: domain.ControlInput,
				InputType:   "password",
				Placeholder: "Re-enter password",
				Order:       2,
				Validations: []domain.ValidationRule{
					required("Please confirm your password"),
				},
			},
			{
				Name:        "startDate",
				Label:       "Start Date",
				ControlType: domain.ControlInput,
				InputType:   "date",
				Order:       3,
				Validations: []domain.ValidationRule{
					required("Start date is required"),
				},
			},
			{
				Name:        "endDate",
				Label:       "End Date",
				ControlType: domain.ControlInput,
				InputType:   "date",
				Order:       4,
				Validations: []domain.ValidationRule{
					required("End date is required"),
				},
			},
			{
				Name:        "minBudget",
				Label:       "Minimum Budget",
				ControlType: domain.ControlInput,
				InputType:   "number",
				Placeholder: "Enter minimum budget",
				Order:       5,
				Validations: []domain.ValidationRule{
					required("Minimum budget is required"),
					minValue(0, "Budget cannot be negative"),
				},
			},
			{
				Name:        "maxBudget",
				Label:       "Maximum Budget",
				ControlType: domain.ControlInput,
				InputType:   "number",
				Placeholder: "Enter maximum budget",
				Order:       6,
				Validations: []domain.ValidationRule{
					required("Maximum budget is required"),
					minValue(0, "Budget cannot be negative"),
				},
			},
			{
				Name:        "agreementType",
				Label:       "Agreement Type",
				ControlType: domain.ControlSelect,
				Placeholder: "Select agreement type",
				Order:       7,
				Options: []domain.SelectOption{
					{Label: "Standard", Value: "standard"},
					{Label: "Custom", Value: "custom"},
				},
				Validations: []domain.ValidationRule{
					required("Agreement type is required"),
				},
			},
			{
				Name:        "customAgreementDetails",
				Label:       "Custom Agreement Details",
				ControlType: domain.ControlTextarea,
				Placeholder: "Provide custom agreement details",
				Order:       8,
				Hidden:      true,
				Conditions: []domain.FieldCondition{
					{
						DependsOn: "agreementType",
						Operator:  domain.ConditionEquals,
						Value:     "custom",
						Action:    domain.ConditionActionShow,
					},
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
			{
				ValidationType: domain.CrossDateRange,
				Fields:         []string{"startDate", "endDate"},
				Operator:       domain.OpLessThan,
				ErrorMessage:   "End date must be after start date",
				ErrorField:     "endDate",
			},
			{
				ValidationType: domain.CrossNumericComparison,
				Fields:         []string{"minBudget", "maxBudget"},
				Operator:       domain.OpLessThanOrEqual,
				ErrorMessage:   "Maximum budget must be greater than or equal to minimum budget",
				ErrorField:     "maxBudget",
			},
			{
				ValidationType: domain.CrossConditionalRequired,
				Fields:         []string{"agreementType", "customAgreementDetails"},
				Operator:       domain.OpRequiredIf,
				ErrorMessage:   "Custom agreement details are required when agreement type is 'Custom'",
				ErrorField:     "customAgreementDetails",
				TriggerValue:   "custom",
			},
		},
	}
}
