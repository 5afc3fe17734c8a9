package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/presentation/tui"
	"github.com/formgate/formgate/internal/runtime"
	"github.com/formgate/formgate/pkg/domain"
)

var fillCmd = &cobra.Command{
	Use:   "fill <form-id>",
	Short: "Fill a built-in form interactively and validate it",
	Long: `Walks through the form's visible fields in order, prompting for each
value, then validates the submission and prints the result. Password inputs
are read without echo.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFill(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
}

func runFill(formID string) error {
	c := catalog.New()
	cfg, err := c.GetFormConfig(context.Background(), formID)
	if err != nil {
		return fmt.Errorf("unknown form %q", formID)
	}

	fmt.Printf("%s\n", cfg.FormTitle)
	if cfg.FormDescription != "" {
		fmt.Printf("%s\n", cfg.FormDescription)
	}
	fmt.Println()

	fields := append([]domain.FormField(nil), cfg.Fields...)
	sort.SliceStable(fields, func(i, j int) bool { return fields[i].Order < fields[j].Order })

	reader := bufio.NewReader(os.Stdin)
	data := make(map[string]any)

	for _, f := range fields {
		// Re-evaluate visibility against what has been typed so far, so
		// dependent fields only appear once their trigger is set.
		if !runtime.IsVisible(f, data) {
			continue
		}

		value, err := promptField(reader, f)
		if err != nil {
			return err
		}
		if value != nil {
			data[f.Name] = value
		}
	}

	engine := runtime.NewEngine(c, runtime.WithVisibilityGating())
	result := engine.Validate(context.Background(), domain.Submission{FormID: formID, Data: data})

	fmt.Println()
	tui.WriteResult(os.Stdout, result)
	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func promptField(reader *bufio.Reader, f domain.FormField) (any, error) {
	label := f.Label
	if label == "" {
		label = f.Name
	}

	if len(f.Options) > 0 {
		values := make([]string, 0, len(f.Options))
		for _, o := range f.Options {
			values = append(values, fmt.Sprintf("%v", o.Value))
		}
		fmt.Printf("%s (%s): ", label, strings.Join(values, "/"))
	} else {
		fmt.Printf("%s: ", label)
	}

	if f.InputType == "password" {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	text, err := reader.ReadString('\n')
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)

	if text == "" {
		return nil, nil
	}
	if f.ControlType == domain.ControlCheckbox {
		return text == "y" || text == "yes" || text == "true", nil
	}
	return text, nil
}
