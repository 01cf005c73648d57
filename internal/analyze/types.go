package analyze

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "putgen/examples/geo"
	Name    string // e.g., "Point"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// SemanticKind is the logical value category of a column, independent of
// nullability.
type SemanticKind int

const (
	KindUnknown SemanticKind = iota
	KindBool
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindByteArray
)

// String returns a human-readable kind name.
func (k SemanticKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindByteArray:
		return "byte-array"
	default:
		return "unknown"
	}
}

// SemanticType is a column's value category plus its nullability variant.
// Pointer-typed fields are the nullable variant; byte arrays are
// inherently nullable (a nil slice is the absent value).
type SemanticType struct {
	Kind     SemanticKind
	Nullable bool
}

// String returns a human-readable representation, e.g. "long?" for a
// nullable long.
func (s SemanticType) String() string {
	if s.Nullable {
		return s.Kind.String() + "?"
	}

	return s.Kind.String()
}

// ReadStrategy describes how a column's value is read from an instance.
type ReadStrategy int

const (
	// ReadDirectField reads an exported struct field.
	ReadDirectField ReadStrategy = iota
	// ReadAccessor calls a getter method for an unexported field.
	ReadAccessor
)

// String returns a human-readable strategy name.
func (r ReadStrategy) String() string {
	switch r {
	case ReadDirectField:
		return "direct-field"
	case ReadAccessor:
		return "accessor-pair"
	default:
		return "unknown"
	}
}

// Construction describes how new instances of the type are built.
// Construction is a per-type choice; read strategies stay per-column.
type Construction int

const (
	// ConstructFields initializes exported fields directly.
	ConstructFields Construction = iota
	// ConstructFactory calls the marked factory function.
	ConstructFactory
)

// String returns a human-readable construction name.
func (c Construction) String() string {
	switch c {
	case ConstructFields:
		return "field-init"
	case ConstructFactory:
		return "factory-method"
	default:
		return "unknown"
	}
}

// ColumnMember describes one persistent column of an annotated type.
type ColumnMember struct {
	// Name is the storage column identifier from the column tag.
	Name string
	// FieldName is the Go field name backing the column.
	FieldName string
	// Getter is the accessor method name when Read is ReadAccessor.
	Getter string
	// Type is the resolved semantic type.
	Type SemanticType
	// Read is how the column value is read from an instance.
	Read ReadStrategy
	// Key is true if the column participates in update row matching.
	Key bool
	// Index is the field index in struct declaration order.
	Index int
}

// FactoryInfo describes the marked factory function of a type.
type FactoryInfo struct {
	// Name is the factory function name.
	Name string
	// Params holds the parameter names in declaration order.
	Params []string
}

// TypeModel is the normalized description of one annotated type.
// It is created once per generation run, consumed by the synthesizer,
// and discarded; it has no runtime existence.
type TypeModel struct {
	// ID identifies the annotated Go type.
	ID TypeID
	// PkgName is the Go package name (import alias for generated code).
	PkgName string
	// Target is the storage identifier (table) the type maps to.
	Target string
	// Columns holds every declared column in declaration order. Order is
	// load-bearing: it becomes the emitted insertion order and the
	// predicate/argument alignment, so this is a slice, never a map.
	Columns []ColumnMember
	// Construction is the per-type construction strategy.
	Construction Construction
	// Factory is set when Construction is ConstructFactory.
	Factory *FactoryInfo
}

// KeyColumns returns the columns with Key set, in declaration order.
func (m *TypeModel) KeyColumns() []ColumnMember {
	var keys []ColumnMember
	for _, c := range m.Columns {
		if c.Key {
			keys = append(keys, c)
		}
	}

	return keys
}
