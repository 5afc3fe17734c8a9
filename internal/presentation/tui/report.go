package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/formgate/formgate/pkg/domain"
)

// WriteResult prints a colored validation report.
func WriteResult(w io.Writer, result domain.ValidationResult) {
	p := termenv.ColorProfile()

	if result.Valid {
		ok := termenv.String("✓ " + result.Message).Foreground(p.Color("#22c55e")).Bold()
		fmt.Fprintln(w, ok)
		return
	}

	head := termenv.String("✗ " + result.Message).Foreground(p.Color("#ef4444")).Bold()
	fmt.Fprintln(w, head)
	for _, e := range result.Errors {
		field := termenv.String(e.Field).Foreground(p.Color("#f59e0b"))
		kind := termenv.String("[" + e.ValidationType + "]").Faint()
		fmt.Fprintf(w, "  %s %s %s\n", field, e.Message, kind)
	}
}
