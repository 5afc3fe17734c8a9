// Package schema validates authored form configurations before they enter
// the catalog or the schema store.
//
// The evaluation engine is deliberately lenient at submission time (unknown
// rule names are skipped, malformed parameters degrade to fixed messages).
// This package moves those problems to load time instead: Lint checks the
// structural invariants of a FormConfig and the per-rule-name parameter
// types, so a malformed schema is refused when it is authored rather than
// producing "Invalid number format" noise on every submission.
//
// Basic usage:
//
//	if err := schema.Lint(cfg); err != nil {
//	    for _, finding := range schema.Findings(err) {
//	        // report each finding to the author
//	    }
//	}
//
// Lint failures are mandatory (the schema is rejected). Warnings returns the
// advisory findings (unknown rule names, unknown cross-validation types)
// which evaluation tolerates but authors almost always want to know about.
package schema
