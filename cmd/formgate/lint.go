package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formgate/formgate/pkg/adapters/file"
	"github.com/formgate/formgate/pkg/schema"
)

var lintCmd = &cobra.Command{
	Use:   "lint <schema-file>...",
	Short: "Check form definitions for structural problems",
	Long: `Lints one or more form definition files: parameter types, pattern syntax,
condition references and cycles, and cross-field rule shapes. Advisory
warnings (unknown rule names) are printed but do not fail the command.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, path := range args {
			if !lintFile(path) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func lintFile(path string) bool {
	cfg, err := file.LoadConfig(path)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return false
	}

	for _, warn := range schema.Warnings(cfg) {
		fmt.Printf("%s: warning: %s\n", path, warn.Error())
	}

	if err := schema.Lint(cfg); err != nil {
		for _, finding := range schema.Findings(err) {
			fmt.Printf("%s: %s\n", path, finding.Error())
		}
		return false
	}

	fmt.Printf("%s: ok ✅\n", path)
	return true
}
