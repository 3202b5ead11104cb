package main

import (
	"fmt"

	"github.com/aretw0/coerce/internal/cli"
	"github.com/spf13/cobra"
)

var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List, export or publish the loaded schemas",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFrom(cmd)
		export, _ := cmd.Flags().GetBool("export")
		check, _ := cmd.Flags().GetBool("check")
		push, _ := cmd.Flags().GetBool("push")

		logger, err := cli.CreateLogger(opts)
		if err != nil {
			return err
		}

		if push {
			// Push what the file declares, without reading the store back.
			reg, err := cli.LoadSource(cmd.Context(), cli.Options{SchemaFile: opts.SchemaFile})
			if err != nil {
				return err
			}
			if err := cli.PushSchemas(cmd.Context(), opts, reg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %d schemas\n", len(reg.IDs()))
			return nil
		}

		reg, err := cli.LoadSource(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if check {
			return cli.CheckSchemas(reg, cmd.OutOrStdout())
		}
		if export {
			return cli.ExportSchemas(reg, cmd.OutOrStdout())
		}

		c, err := cli.NewCoercer(cmd.Context(), opts, logger, nil)
		if err != nil {
			return err
		}
		return cli.RunSchemas(c, reg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
	schemasCmd.Flags().Bool("export", false, "Print the schemas as a YAML document")
	schemasCmd.Flags().Bool("push", false, "Copy the schema file into the Redis store")
	schemasCmd.Flags().Bool("check", false, "Report dangling references and reference cycles")
}
