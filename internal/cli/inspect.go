package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"putgen/internal/config"
	"putgen/internal/gen"
	"putgen/internal/pipeline"
)

// InspectCmd returns the inspect command.
func InspectCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump the extracted type models for debugging",
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

			for _, model := range res.Models {
				spew.Dump(model)
			}

			printDiagnostics(res.Diags)

			return nil
		},
	}

	cmd.Flags().StringSliceP("packages", "p", nil, "Package patterns to scan (e.g. ./models/...)")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file path (default putgen.yaml)")

	return cmd
}
