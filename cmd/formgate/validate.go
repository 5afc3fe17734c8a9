package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formgate/formgate/internal/presentation/tui"
	"github.com/formgate/formgate/internal/runtime"
	"github.com/formgate/formgate/pkg/adapters/file"
	"github.com/formgate/formgate/pkg/adapters/memory"
	"github.com/formgate/formgate/pkg/domain"
	"github.com/formgate/formgate/pkg/ports"

	"github.com/formgate/formgate/internal/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <data-file>",
	Short: "Validate a submission file against a form",
	Long: `Reads a JSON or YAML payload and validates it against a form definition.
The form is either a built-in one (--form) or loaded from a file (--schema).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("form", "", "Built-in form id (see 'formgate forms')")
	validateCmd.Flags().String("schema", "", "Path to a form definition file (YAML or JSON)")
	validateCmd.Flags().Bool("gate-visibility", false, "Skip rules on fields hidden by their conditions")
}

func runValidate(cmd *cobra.Command, dataPath string) error {
	formID, _ := cmd.Flags().GetString("form")
	schemaPath, _ := cmd.Flags().GetString("schema")
	gate, _ := cmd.Flags().GetBool("gate-visibility")

	source, formID, err := resolveSource(formID, schemaPath)
	if err != nil {
		return err
	}

	data, err := file.LoadSubmission(dataPath)
	if err != nil {
		return err
	}

	opts := []runtime.EngineOption{runtime.WithLogger(newLogger(cmd))}
	if gate {
		opts = append(opts, runtime.WithVisibilityGating())
	}
	engine := runtime.NewEngine(source, opts...)

	result := engine.Validate(context.Background(), domain.Submission{FormID: formID, Data: data})
	tui.WriteResult(os.Stdout, result)

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

// resolveSource picks the form source for CLI validation: a file-loaded
// definition wins over a built-in form id.
func resolveSource(formID, schemaPath string) (ports.FormSource, string, error) {
	if schemaPath != "" {
		cfg, err := file.LoadConfig(schemaPath)
		if err != nil {
			return nil, "", err
		}
		source, err := memory.NewSource(cfg)
		if err != nil {
			return nil, "", err
		}
		return source, cfg.FormID, nil
	}
	if formID == "" {
		return nil, "", fmt.Errorf("either --form or --schema is required")
	}
	return catalog.New(), formID, nil
}
