package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/formgate/formgate/internal/catalog"
	"github.com/formgate/formgate/internal/presentation/tui"
)

var formsCmd = &cobra.Command{
	Use:   "forms [form-id]",
	Short: "List the built-in forms, or show one",
	Long: `Without arguments, lists the ids of the built-in form catalog.
With a form id, renders the full definition (fields, rules, conditions).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := catalog.New()

		if len(args) == 0 {
			for _, id := range c.IDs() {
				cfg, _ := c.GetFormConfig(context.Background(), id)
				fmt.Printf("%-18s %s\n", id, cfg.FormTitle)
			}
			return
		}

		cfg, err := c.GetFormConfig(context.Background(), args[0])
		if err != nil {
			fmt.Printf("Unknown form %q. Run 'formgate forms' to list them.\n", args[0])
			os.Exit(1)
		}

		render := tui.NewRenderer()
		out, err := render(tui.FormMarkdown(cfg))
		if err != nil {
			// Plain markdown is still useful when the terminal rejects styling.
			out = tui.FormMarkdown(cfg)
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(formsCmd)
}
