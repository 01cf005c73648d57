package plan

import (
	"strings"

	"putgen/internal/analyze"
)

// ResolverPlan is the synthesized artifact for one validated type model.
// It is consumed by the emission backend and has no runtime existence.
type ResolverPlan struct {
	// Model is the validated model the plan was synthesized from.
	Model *analyze.TypeModel
	// Values holds one extraction step per declared column, in
	// declaration order.
	Values []ValueStep
	// Insert is the insert-query plan.
	Insert InsertPlan
	// Update is the update-query plan.
	Update UpdatePlan
}

// ValueStep is one column extraction step.
type ValueStep struct {
	// Column is the storage column name the value is bound under.
	Column string
	// Access describes how the value is read from an instance.
	Access AccessStep
}

// AccessStep describes how generated code reads one column value.
type AccessStep struct {
	// Read selects field access or a getter call.
	Read analyze.ReadStrategy
	// FieldName is the Go field to read when Read is ReadDirectField.
	FieldName string
	// Getter is the method to call when Read is ReadAccessor.
	Getter string
	// Boxed is true when the read value is a pointer that must be boxed
	// (nil pointer becomes an explicit null) before binding.
	Boxed bool
}

// InsertPlan describes the insert query. It carries the target only: the
// insert location never depends on instance data, so callers may compute
// it once and reuse it.
type InsertPlan struct {
	Target string
}

// UpdatePlan describes the update query for one instance.
type UpdatePlan struct {
	// Target is the storage identifier.
	Target string
	// Where is the key predicate, one "<name> = ?" clause per key column
	// joined by AND, in declaration order.
	Where string
	// Args holds the extraction steps for the predicate placeholders.
	// Position k of Args corresponds to placeholder k of Where; the
	// alignment is a strict invariant.
	Args []ValueStep
}

// Placeholders returns the number of "?" placeholders in the predicate.
func (u UpdatePlan) Placeholders() int {
	return strings.Count(u.Where, "?")
}
