package analyze

import (
	"fmt"

	"golang.org/x/tools/go/packages"

	"putgen/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and extracts annotated type models.
// It is stateless per invocation and safe to reuse.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ExtractModels loads the specified packages and extracts one TypeModel per
// annotated type, in source declaration order.
//
// Load-level failures (unresolvable patterns, packages that do not compile)
// are returned as an error. Per-type extraction failures become error
// diagnostics attributed to that type; sibling types keep processing.
func (a *Analyzer) ExtractModels(patterns ...string) ([]*TypeModel, *diagnostic.Diagnostics, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("package errors: %v", errs)
	}

	diags := &diagnostic.Diagnostics{}

	var models []*TypeModel
	for _, pkg := range pkgs {
		models = append(models, extractPackage(pkg, diags)...)
	}

	return models, diags, nil
}
