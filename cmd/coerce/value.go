package main

import (
	"github.com/aretw0/coerce/internal/cli"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value [schema-id] [value]",
	Short: "Coerce a single value",
	Long: `Coerces a single string under a schema identifier and prints the result as JSON.
With --form the first argument is form text such as "[int]" or "?uuid".`,
	Example: `  coerce value -s schemas.yaml user/age 42
  coerce value --form "[keyword]" :a`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		asForm, _ := cmd.Flags().GetBool("form")

		logger, err := cli.CreateLogger(opts)
		if err != nil {
			return err
		}
		c, err := cli.NewCoercer(cmd.Context(), opts, logger, nil)
		if err != nil {
			return err
		}
		return cli.RunValue(c, args[0], args[1], asForm, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
	valueCmd.Flags().Bool("form", false, "Treat the first argument as form text")
}
