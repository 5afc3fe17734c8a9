package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/formgate/formgate"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of formgate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("formgate version %s\n", strings.TrimSpace(formgate.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
