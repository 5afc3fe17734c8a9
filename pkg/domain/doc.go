/*
Package domain contains the core data model for the formgate engine.

It defines the declarative description of a form (FormConfig, FormField,
ValidationRule, FieldCondition, CrossFieldValidation), the runtime payload
(Submission) and the validation outcome (ValidationResult, ValidationError).
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - FormConfig: a form's fields, rules and cross-field constraints.
  - FormField: a single named input with rules and visibility conditions.
  - RuleValue: the tagged variant holding a rule's parameter (bool, number,
    string or string list depending on the rule name).
  - Submission: field name -> value pairs to be checked against a form.
  - ValidationResult: the aggregated pass/fail verdict with per-field errors.
*/
package domain
