package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/formgate/formgate/pkg/domain"
)

// FormMarkdown renders a form configuration as markdown, for display through
// the glamour renderer.
func FormMarkdown(cfg *domain.FormConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", orDefault(cfg.FormTitle, cfg.FormID))
	if cfg.FormDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", cfg.FormDescription)
	}

	fields := append([]domain.FormField(nil), cfg.Fields...)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })

	for _, f := range fields {
		fmt.Fprintf(&b, "## %s (`%s`)\n\n", orDefault(f.Label, f.Name), f.Name)
		fmt.Fprintf(&b, "- Control: %s", f.ControlType)
		if f.InputType != "" {
			fmt.Fprintf(&b, " (%s)", f.InputType)
		}
		b.WriteString("\n")

		if len(f.Options) > 0 {
			opts := make([]string, 0, len(f.Options))
			for _, o := range f.Options {
				opts = append(opts, fmt.Sprintf("%s=`%v`", o.Label, o.Value))
			}
			fmt.Fprintf(&b, "- Options: %s\n", strings.Join(opts, ", "))
		}

		for _, rule := range f.Validations {
			fmt.Fprintf(&b, "- Rule `%s`: %s\n", rule.Name, rule.ErrorMessage)
		}

		for _, cond := range f.Conditions {
			switch cond.Operator {
			case domain.ConditionIn:
				fmt.Fprintf(&b, "- Shown when `%s` is one of %v\n", cond.DependsOn, cond.Values)
			default:
				fmt.Fprintf(&b, "- Shown when `%s` equals `%v`\n", cond.DependsOn, cond.Value)
			}
		}
		b.WriteString("\n")
	}

	if len(cfg.CrossFieldValidations) > 0 {
		b.WriteString("## Cross-field rules\n\n")
		for _, cross := range cfg.CrossFieldValidations {
			fmt.Fprintf(&b, "- `%s` on %s: %s\n",
				cross.ValidationType, strings.Join(cross.Fields, ", "), cross.ErrorMessage)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
