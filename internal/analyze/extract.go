package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"putgen/internal/diagnostic"
	"putgen/internal/match"
)

// Source annotation markers.
const (
	directiveTarget  = "putgen:target"
	directiveFactory = "putgen:factory"
	columnTag        = "column"
	keyOption        = "key"
)

// annotatedType pairs a type declaration with its storage target.
type annotatedType struct {
	spec   *ast.TypeSpec
	target string
}

// extractPackage finds annotated types and marked factories in one loaded
// package and extracts a TypeModel per annotated type. Failing types are
// reported through diags and skipped; no partial model is produced.
func extractPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) []*TypeModel {
	var annotated []annotatedType

	factories := make(map[string][]*types.Func)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}

				for _, s := range d.Specs {
					ts, ok := s.(*ast.TypeSpec)
					if !ok {
						continue
					}

					doc := ts.Doc
					if doc == nil {
						doc = d.Doc
					}

					if target, ok := directiveArg(doc, directiveTarget); ok {
						annotated = append(annotated, annotatedType{spec: ts, target: target})
					}
				}

			case *ast.FuncDecl:
				if d.Recv != nil {
					continue
				}

				if _, ok := directiveArg(d.Doc, directiveFactory); !ok {
					continue
				}

				fn, ok := pkg.TypesInfo.Defs[d.Name].(*types.Func)
				if !ok {
					continue
				}

				owner, ok := factoryResultType(fn)
				if !ok {
					diags.AddError(diagnostic.CodeBadFactoryShape,
						"factory must be a package-level function returning exactly one value of a type declared in the same package",
						pkg.PkgPath+"."+d.Name.Name, "")

					continue
				}

				factories[owner] = append(factories[owner], fn)
			}
		}
	}

	var models []*TypeModel
	for _, at := range annotated {
		if m := extractType(pkg, at, factories, diags); m != nil {
			models = append(models, m)
		}
	}

	return models
}

// extractType normalizes one annotated type declaration into a TypeModel.
// Returns nil if any extraction error was reported for this type.
func extractType(
	pkg *packages.Package,
	at annotatedType,
	factories map[string][]*types.Func,
	diags *diagnostic.Diagnostics,
) *TypeModel {
	typeName := at.spec.Name.Name
	qualified := pkg.PkgPath + "." + typeName

	if at.target == "" {
		diags.AddError(diagnostic.CodeEmptyTarget,
			"putgen:target directive needs a storage identifier", qualified, "")

		return nil
	}

	obj, ok := pkg.TypesInfo.Defs[at.spec.Name].(*types.TypeName)
	if !ok {
		diags.AddError(diagnostic.CodeUnclassifiedMember,
			"no type information for declaration", qualified, "")

		return nil
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		diags.AddError(diagnostic.CodeUnclassifiedMember,
			"putgen:target must mark a struct type", qualified, "")

		return nil
	}

	errsBefore := len(diags.Errors)

	model := &TypeModel{
		ID:           TypeID{PkgPath: pkg.PkgPath, Name: typeName},
		PkgName:      pkg.Name,
		Target:       at.target,
		Construction: ConstructFields,
	}

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		tag := reflect.StructTag(st.Tag(i)).Get(columnTag)
		if tag == "" || tag == "-" {
			continue
		}

		name, isKey := parseColumnTag(tag)
		if name == "" {
			diags.AddError(diagnostic.CodeUnclassifiedMember,
				fmt.Sprintf("field %s has a column tag with no column name", field.Name()),
				qualified, "")

			continue
		}

		if field.Embedded() {
			diags.AddError(diagnostic.CodeUnclassifiedMember,
				fmt.Sprintf("embedded field %s cannot be a column", field.Name()),
				qualified, name)

			continue
		}

		sem, err := ResolveSemanticType(field.Type())
		if err != nil {
			diags.AddError(diagnostic.CodeUnsupportedColumnType,
				fmt.Sprintf("field %s: %v", field.Name(), err), qualified, name)

			continue
		}

		col := ColumnMember{
			Name:      name,
			FieldName: field.Name(),
			Type:      sem,
			Key:       isKey,
			Index:     i,
		}

		if field.Exported() {
			col.Read = ReadDirectField
		} else {
			getter, ok := findGetter(obj.Type(), field)
			if !ok {
				exported := exportName(field.Name())
				diags.AddError(diagnostic.CodeUnclassifiedMember,
					fmt.Sprintf("unexported field %s needs a niladic getter returning %s (e.g. %s() or Get%s())",
						field.Name(), field.Type(), exported, exported),
					qualified, name)

				continue
			}

			col.Read = ReadAccessor
			col.Getter = getter
		}

		model.Columns = append(model.Columns, col)
	}

	switch fns := factories[typeName]; {
	case len(fns) > 1:
		diags.AddError(diagnostic.CodeBadFactoryShape,
			fmt.Sprintf("%d factory functions marked for one type, want at most one", len(fns)),
			qualified, "")

	case len(fns) == 1:
		model.Construction = ConstructFactory
		model.Factory = factoryInfo(fns[0])
	}

	if len(diags.Errors) > errsBefore {
		// No partial model for a failing type.
		return nil
	}

	return model
}

// directiveArg scans a doc comment group for a putgen directive and returns
// its argument. Directives are plain "//" comments with no space before the
// marker, so they never show up in godoc output.
func directiveArg(doc *ast.CommentGroup, directive string) (string, bool) {
	if doc == nil {
		return "", false
	}

	for _, c := range doc.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, directive) {
			continue
		}

		rest := text[len(directive):]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			// A longer directive name, not ours.
			continue
		}

		return strings.TrimSpace(rest), true
	}

	return "", false
}

// parseColumnTag splits a column tag into the column name and the key flag.
func parseColumnTag(tag string) (string, bool) {
	parts := strings.Split(tag, ",")

	isKey := false
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == keyOption {
			isKey = true
		}
	}

	return strings.TrimSpace(parts[0]), isKey
}

// findGetter locates the accessor method for an unexported column field:
// a niladic exported method whose single result has exactly the field's
// type and whose name, after an optional "Get" prefix, normalizes to the
// field name. Normalized matching keeps initialism getters working
// ("id" -> "ID()", "uri" -> "GetURI()"). A bare-named getter wins over a
// Get-prefixed one when both exist.
func findGetter(recv types.Type, field *types.Var) (string, bool) {
	mset := types.NewMethodSet(types.NewPointer(recv))

	getPrefixed := ""

	for i := 0; i < mset.Len(); i++ {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok {
			continue
		}

		if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}

		if !types.Identical(sig.Results().At(0).Type(), field.Type()) {
			continue
		}

		name := fn.Name()
		switch {
		case match.SameIdent(name, field.Name()):
			return name, true
		case strings.HasPrefix(name, "Get") && match.SameIdent(name[len("Get"):], field.Name()):
			getPrefixed = name
		}
	}

	if getPrefixed != "" {
		return getPrefixed, true
	}

	return "", false
}

// factoryResultType returns the name of the type a factory constructs.
// The factory must return exactly one value: the owning type or a pointer
// to it, declared in the factory's own package.
func factoryResultType(fn *types.Func) (string, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return "", false
	}

	if sig.Results().Len() != 1 {
		return "", false
	}

	result := sig.Results().At(0).Type()
	if ptr, ok := result.(*types.Pointer); ok {
		result = ptr.Elem()
	}

	named, ok := result.(*types.Named)
	if !ok {
		return "", false
	}

	if named.Obj().Pkg() == nil || fn.Pkg() == nil || named.Obj().Pkg().Path() != fn.Pkg().Path() {
		return "", false
	}

	return named.Obj().Name(), true
}

// factoryInfo records a factory function's name and parameter order.
func factoryInfo(fn *types.Func) *FactoryInfo {
	sig := fn.Type().(*types.Signature)

	params := make([]string, 0, sig.Params().Len())
	for i := 0; i < sig.Params().Len(); i++ {
		params = append(params, sig.Params().At(i).Name())
	}

	return &FactoryInfo{
		Name:   fn.Name(),
		Params: params,
	}
}

// exportName capitalizes the first letter of an identifier.
func exportName(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
