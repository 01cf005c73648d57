package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"putgen/internal/analyze"
	"putgen/internal/common"
	"putgen/internal/plan"
)

// runtimePkg is the import path of the resolver runtime contract.
const runtimePkg = "putgen/put"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName: "resolvers",
		OutputDir:   "./resolvers",
	}
}

// Generator renders resolver plans into formatted Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "geo_point_put_resolver.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one resolver file per plan, in input order.
func (g *Generator) Generate(plans []*plan.ResolverPlan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(plans))

	for _, p := range plans {
		file, err := g.generateResolver(p)
		if err != nil {
			return nil, fmt.Errorf("generating resolver for %s: %w", p.Model.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateResolver renders a single plan into a formatted source file.
func (g *Generator) generateResolver(p *plan.ResolverPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := resolverTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the resolver template.
type templateData struct {
	PackageName  string
	Filename     string
	Imports      []importSpec
	ResolverName string
	TypeRef      string
	Target       string
	Where        string
	WhereArgs    []string
	Values       []valueData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// valueData is one cv.Put line in MapToColumnValues.
type valueData struct {
	Column string
	Expr   string
}

// buildTemplateData constructs the template data from a resolver plan.
func (g *Generator) buildTemplateData(p *plan.ResolverPlan) *templateData {
	model := p.Model

	data := &templateData{
		PackageName:  g.config.PackageName,
		Filename:     g.filename(model),
		ResolverName: resolverName(model),
		TypeRef:      model.PkgName + "." + model.ID.Name,
		Target:       p.Insert.Target,
		Where:        p.Update.Where,
	}

	for _, arg := range p.Update.Args {
		data.WhereArgs = append(data.WhereArgs, accessExpr(arg.Access))
	}

	for _, step := range p.Values {
		data.Values = append(data.Values, valueData{
			Column: step.Column,
			Expr:   accessExpr(step.Access),
		})
	}

	imports := make(map[string]importSpec)
	g.addImport(imports, runtimePkg, "")
	g.addImport(imports, model.ID.PkgPath, model.PkgName)

	for _, imp := range imports {
		data.Imports = append(data.Imports, imp)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}

// accessExpr renders the Go expression reading one column value from obj.
func accessExpr(a plan.AccessStep) string {
	expr := "obj." + a.FieldName
	if a.Read == analyze.ReadAccessor {
		expr = "obj." + a.Getter + "()"
	}

	if a.Boxed {
		expr = "put.Nullable(" + expr + ")"
	}

	return expr
}

// resolverName returns the generated type name for a model's resolver.
func resolverName(model *analyze.TypeModel) string {
	return model.ID.Name + "PutResolver"
}

func (g *Generator) filename(model *analyze.TypeModel) string {
	return fmt.Sprintf("%s_%s_put_resolver.go", model.PkgName, strings.ToLower(model.ID.Name))
}

// addImport records an import, aliasing it only when the package name
// differs from the path base.
func (g *Generator) addImport(imports map[string]importSpec, pkgPath, pkgName string) {
	if pkgPath == "" {
		return
	}

	alias := ""
	if pkgName != "" && pkgName != common.PkgAlias(pkgPath) {
		alias = pkgName
	}

	imports[pkgPath] = importSpec{
		Alias: alias,
		Path:  pkgPath,
	}
}

// Template for the resolver file

var resolverTemplate = template.Must(template.New("resolver").Parse(`// Code generated by putgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

// {{.ResolverName}} maps {{.TypeRef}} values to the "{{.Target}}" table.
type {{.ResolverName}} struct{}

func ({{.ResolverName}}) MapToInsertQuery(obj {{.TypeRef}}) put.InsertQuery {
	return put.InsertQuery{Table: {{printf "%q" .Target}}}
}

func ({{.ResolverName}}) MapToUpdateQuery(obj {{.TypeRef}}) put.UpdateQuery {
	return put.UpdateQuery{
		Table:     {{printf "%q" .Target}},
		Where:     {{printf "%q" .Where}},
		WhereArgs: []any{ {{range $i, $a := .WhereArgs}}{{if $i}}, {{end}}{{$a}}{{end}} },
	}
}

func ({{.ResolverName}}) MapToColumnValues(obj {{.TypeRef}}) *put.ColumnValues {
	cv := put.NewColumnValues({{len .Values}})
{{range .Values}}	cv.Put({{printf "%q" .Column}}, {{.Expr}})
{{end}}
	return cv
}
`))
