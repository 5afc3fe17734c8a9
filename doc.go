/*
Package formgate is a dynamic-form validation engine: form definitions carry
their own validation rules as data, and arbitrary key/value payloads are
checked against them at runtime, producing a deterministic list of errors.

# Concept

A FormConfig describes a form the way a frontend renders it: typed fields,
per-field validation rules, conditional visibility, and cross-field rules
(password confirmation, date ranges, numeric bounds, conditionally required
fields). Because the rules live in data rather than code, the same definition
drives the UI and the server-side check, and new forms ship without a deploy.

# Key Features

  - Deterministic results: errors appear in declaration order, field rules
    before cross-field rules, so clients can rely on stable output.
  - Lenient evaluation: unknown rule names are skipped at submission time;
    the schema linter reports them to authors at load time instead.
  - Managed schemas: a registry persists authored schemas (memory, Redis or
    filesystem backends) next to the built-in form catalog.
  - Hexagonal layout: the engine depends only on a FormSource port, so HTTP,
    MCP and CLI surfaces share one core.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/formgate/formgate"
	)

	func main() {
		eng := formgate.New()

		result := eng.Validate(context.Background(), "registration", map[string]any{
			"username": "ada",
			"email":    "ada@example.com",
		})

		fmt.Println(result.Message)
		for _, e := range result.Errors {
			fmt.Printf("%s: %s\n", e.Field, e.Message)
		}
	}
*/
package formgate
