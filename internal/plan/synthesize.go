package plan

import (
	"errors"
	"fmt"
	"strings"

	"putgen/internal/analyze"
	"putgen/internal/common"
)

// Synthesize produces the resolver plan for a validated type model.
// It is deterministic: identical models yield identical plans.
//
// Synthesize expects a model that passed validation; it still guards the
// invariants it depends on directly and fails rather than emit a plan that
// could not produce a well-formed update.
func Synthesize(m *analyze.TypeModel) (*ResolverPlan, error) {
	if m == nil {
		return nil, errors.New("nil type model")
	}

	if m.Target == "" {
		return nil, fmt.Errorf("type %s has no storage target", m.ID)
	}

	if common.IsEmpty(m.Columns) {
		return nil, fmt.Errorf("type %s declares no columns", m.ID)
	}

	keys := m.KeyColumns()
	if common.IsEmpty(keys) {
		return nil, fmt.Errorf("type %s has no key columns", m.ID)
	}

	p := &ResolverPlan{
		Model:  m,
		Insert: InsertPlan{Target: m.Target},
	}

	for _, c := range m.Columns {
		p.Values = append(p.Values, valueStep(c))
	}

	clauses := make([]string, 0, len(keys))
	args := make([]ValueStep, 0, len(keys))

	for _, k := range keys {
		clauses = append(clauses, k.Name+" = ?")
		args = append(args, valueStep(k))
	}

	p.Update = UpdatePlan{
		Target: m.Target,
		Where:  strings.Join(clauses, " AND "),
		Args:   args,
	}

	return p, nil
}

// valueStep builds the extraction step for one column.
//
// Extraction always reads from an existing instance via field or getter,
// even when construction uses a factory: read and construction strategies
// are independent. Nullable pointer values get boxed so a nil pointer
// binds an explicit null; byte arrays are nullable by themselves and pass
// through unboxed.
func valueStep(c analyze.ColumnMember) ValueStep {
	return ValueStep{
		Column: c.Name,
		Access: AccessStep{
			Read:      c.Read,
			FieldName: c.FieldName,
			Getter:    c.Getter,
			Boxed:     c.Type.Nullable && c.Type.Kind != analyze.KindByteArray,
		},
	}
}
