package main

import (
	"fmt"
	"os"

	"github.com/aretw0/coerce/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "coerce",
	Short: "Coerce string values into typed values using schemas",
	Long: `Coerce turns string-typed inputs (query parameters, form posts, environment
variables) into typed values according to schemas keyed by namespaced identifiers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("schemas", "s", "", "Schema file (YAML or JSON)")
	rootCmd.PersistentFlags().String("redis", "", "Redis URL of a schema store (e.g. redis://localhost:6379/0)")
	rootCmd.PersistentFlags().String("redis-prefix", "", "Key prefix of the Redis schema store")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every resolution to stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

func optionsFrom(cmd *cobra.Command) cli.Options {
	flags := cmd.Flags()
	schemas, _ := flags.GetString("schemas")
	redisURL, _ := flags.GetString("redis")
	prefix, _ := flags.GetString("redis-prefix")
	debug, _ := flags.GetBool("debug")
	level, _ := flags.GetString("log-level")

	if schemas == "" {
		schemas = os.Getenv("COERCE_SCHEMAS")
	}
	if redisURL == "" {
		redisURL = os.Getenv("COERCE_REDIS_URL")
	}

	return cli.Options{
		SchemaFile:  schemas,
		RedisURL:    redisURL,
		RedisPrefix: prefix,
		Debug:       debug,
		LogLevel:    level,
	}
}
