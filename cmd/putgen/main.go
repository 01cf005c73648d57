// Package main provides the CLI entrypoint for putgen.
//
// putgen is a build-time codegen tool that:
//   - Scans Go packages (AST + go/types) for annotated record types
//   - Validates each type's column, key and factory declarations
//   - Generates one put resolver per type (insert, update, column values)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"putgen/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "putgen",
		Short: "putgen - put resolver generator for annotated record types",
		Long: `putgen scans Go packages for record types annotated with putgen:target
and generates put resolvers: small stateless types that map a record to
its insert query, update query and column values.`,
	}

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.InspectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
