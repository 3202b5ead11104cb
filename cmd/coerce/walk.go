package main

import (
	"io"
	"os"

	"github.com/aretw0/coerce/internal/cli"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk [file]",
	Short: "Coerce every value of a YAML or JSON document",
	Long:  `Reads a document from the given file (or stdin) and coerces each mapping value using its key as the schema identifier.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)

		logger, err := cli.CreateLogger(opts)
		if err != nil {
			return err
		}
		c, err := cli.NewCoercer(cmd.Context(), opts, logger, nil)
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return cli.RunWalk(c, in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)
}
