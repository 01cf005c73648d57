package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"putgen/internal/config"
	"putgen/internal/gen"
	"putgen/internal/pipeline"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate put resolvers for annotated record types",
		Long: `Scan the configured packages for annotated record types, validate them,
and write one put resolver file per type into the output directory.

Types that fail validation are reported and skipped; valid siblings are
still generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				return err
			}

			res, err := pipeline.Run(pipeline.Options{
				Patterns: cfg.Packages,
				Generator: gen.GeneratorConfig{
					PackageName: cfg.Output.Package,
					OutputDir:   cfg.Output.Dir,
				},
			})
			if err != nil {
				return err
			}

			printDiagnostics(res.Diags)

			if err := gen.WriteFiles(res.Files, cfg.Output.Dir); err != nil {
				return err
			}

			for _, f := range res.Files {
				fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint("wrote"), f.Filename)
			}

			if res.Diags.HasErrors() {
				return diagError(res.Diags)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceP("packages", "p", nil, "Package patterns to scan (e.g. ./models/...)")
	cmd.Flags().String("out", "", "Output directory for generated files")
	cmd.Flags().String("pkg", "", "Package name of the generated files")
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Config file path (default putgen.yaml)")

	return cmd
}
