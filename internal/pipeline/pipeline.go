package pipeline

import (
	"putgen/internal/analyze"
	"putgen/internal/diagnostic"
	"putgen/internal/gen"
	"putgen/internal/plan"
	"putgen/internal/validate"
)

// Options configures a pipeline run.
type Options struct {
	// Patterns are the package patterns to scan for annotated types.
	Patterns []string
	// Generator configures the emitted package and output directory.
	Generator gen.GeneratorConfig
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Models are all extracted type models, including invalid ones.
	Models []*analyze.TypeModel
	// Files are the rendered resolver files, one per valid type.
	Files []gen.GeneratedFile
	// Diags collects every diagnostic produced along the way.
	Diags *diagnostic.Diagnostics
}

// Run executes the full pipeline over the configured package patterns.
// Load-level failures return an error; per-type failures land in
// Result.Diags and suppress that type's output file only.
func Run(opts Options) (*Result, error) {
	analyzer := analyze.NewAnalyzer()

	models, diags, err := analyzer.ExtractModels(opts.Patterns...)
	if err != nil {
		return nil, err
	}

	generator := gen.NewGenerator(opts.Generator)
	files := process(models, generator, diags)

	return &Result{
		Models: models,
		Files:  files,
		Diags:  diags,
	}, nil
}

// process runs each model through validation, synthesis and rendering.
// Stage failures get stage-specific diagnostic codes: validation codes
// from the validator, synthesis_failed for plan synthesis, render_failed
// for emission.
func process(models []*analyze.TypeModel, generator *gen.Generator, diags *diagnostic.Diagnostics) []gen.GeneratedFile {
	var files []gen.GeneratedFile

	for _, model := range models {
		vdiags := validate.Validate(model)
		diags.Merge(*vdiags)

		if vdiags.HasErrors() {
			continue
		}

		p, err := plan.Synthesize(model)
		if err != nil {
			diags.AddError(diagnostic.CodeSynthesisFailed, err.Error(), model.ID.String(), "")
			continue
		}

		rendered, err := generator.Generate([]*plan.ResolverPlan{p})
		if err != nil {
			diags.AddError(diagnostic.CodeRenderFailed, err.Error(), model.ID.String(), "")
			continue
		}

		files = append(files, rendered...)
	}

	return files
}
