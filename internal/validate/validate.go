package validate

import (
	"fmt"

	"putgen/internal/analyze"
	"putgen/internal/common"
	"putgen/internal/diagnostic"
	"putgen/internal/match"
)

// Validate checks one type model and returns the collected diagnostics.
// A model passing with no errors is safe to hand to the synthesizer
// unchanged.
func Validate(m *analyze.TypeModel) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if m == nil {
		res.AddError("model_is_nil", "type model is nil", "", "")
		return res
	}

	typeName := m.ID.String()

	if common.IsEmpty(m.Columns) {
		res.AddError(diagnostic.CodeNoColumns,
			"type declares no columns", typeName, "")

		// Nothing further to check without columns.
		return res
	}

	seen := make(map[string]struct{}, len(m.Columns))
	for _, c := range m.Columns {
		if _, ok := seen[c.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateColumnName,
				fmt.Sprintf("column %q declared more than once", c.Name),
				typeName, c.Name)

			continue
		}

		seen[c.Name] = struct{}{}
	}

	keys := m.KeyColumns()
	if common.IsEmpty(keys) {
		res.AddError(diagnostic.CodeNoKey,
			"no column is marked as key; updates cannot target a row",
			typeName, "")
	}

	for _, k := range keys {
		// Nullable keys are fine (the predicate binds a NULL placeholder),
		// but blob equality is not assumed supported by the predicate
		// language.
		if k.Type.Kind == analyze.KindByteArray {
			res.AddError(diagnostic.CodeUnsupportedKeyType,
				fmt.Sprintf("key column %q is a byte-array; blob equality is not supported in update predicates", k.Name),
				typeName, k.Name)
		}
	}

	if m.Construction == analyze.ConstructFactory && m.Factory != nil {
		validateFactory(res, typeName, m)
	}

	return res
}

// validateFactory checks the bijection between factory parameters and
// declared columns. This keeps the generated extraction and the factory
// re-construction path (used by symmetric read mapping) consistent.
func validateFactory(res *diagnostic.Diagnostics, typeName string, m *analyze.TypeModel) {
	matched := make([]bool, len(m.Columns))

	for _, p := range m.Factory.Params {
		idx := -1

		for i, c := range m.Columns {
			if matched[i] {
				continue
			}

			if match.SameIdent(p, c.Name) || match.SameIdent(p, c.FieldName) {
				idx = i
				break
			}
		}

		if idx == -1 {
			res.AddError(diagnostic.CodeFactoryParameterMismatch,
				fmt.Sprintf("factory %s parameter %q has no corresponding column", m.Factory.Name, p),
				typeName, "")

			continue
		}

		matched[idx] = true
	}

	for i, c := range m.Columns {
		if !matched[i] {
			res.AddError(diagnostic.CodeFactoryParameterMismatch,
				fmt.Sprintf("factory %s has no parameter for column %q", m.Factory.Name, c.Name),
				typeName, c.Name)
		}
	}
}
