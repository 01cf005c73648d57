package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"putgen/internal/config"
	"putgen/internal/gen"
	"putgen/internal/pipeline"
)

// CheckCmd returns the check command.
func CheckCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate annotated record types without writing files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			res, err := pipeline.Run(pipeline.Options{
				Patterns:  cfg.Packages,
				Generator: gen.GeneratorConfig{PackageName: cfg.Output.Package},
			})
			if err != nil {
				return err
			}

			printDiagnostics(res.Diags)

			if res.Diags.HasErrors() {
				return diagError(res.Diags)
			}

			fmt.Printf("%s %d annotated types, %d resolvers\n",
				color.New(color.FgGreen).Sprint("ok:"), len(res.Models), len(res.Files))

			return nil
		},
	}

	cmd.Flags().StringSliceP("packages", "p", nil, "Package patterns to scan (e.g. ./models/...)")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file path (default putgen.yaml)")

	return cmd
}
