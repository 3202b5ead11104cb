package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/coerce"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of coerce",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coerce version %s\n", strings.TrimSpace(coerce.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
