package put

// ColumnValues is an insertion-ordered mapping from column name to value.
// A nil value is an explicit null, distinct from an absent column.
type ColumnValues struct {
	keys []string
	vals map[string]any
}

// NewColumnValues creates a ColumnValues sized for the given column count.
func NewColumnValues(capacity int) *ColumnValues {
	return &ColumnValues{
		keys: make([]string, 0, capacity),
		vals: make(map[string]any, capacity),
	}
}

// Put binds value under name. Re-binding a name overwrites the value and
// keeps the column's original position.
func (cv *ColumnValues) Put(name string, value any) {
	if _, ok := cv.vals[name]; !ok {
		cv.keys = append(cv.keys, name)
	}

	cv.vals[name] = value
}

// PutNull binds an explicit null under name.
func (cv *ColumnValues) PutNull(name string) {
	cv.Put(name, nil)
}

// Get returns the value bound under name. A bound null returns (nil, true);
// an absent column returns (nil, false).
func (cv *ColumnValues) Get(name string) (any, bool) {
	v, ok := cv.vals[name]

	return v, ok
}

// Columns returns the column names in insertion order.
func (cv *ColumnValues) Columns() []string {
	out := make([]string, len(cv.keys))
	copy(out, cv.keys)

	return out
}

// Len returns the number of bound columns.
func (cv *ColumnValues) Len() int {
	return len(cv.keys)
}

// Nullable boxes a pointer value for binding: a nil pointer becomes an
// explicit null, anything else the pointed-to value. Generated resolvers
// use it for nullable columns and nullable key arguments.
func Nullable[T any](p *T) any {
	if p == nil {
		return nil
	}

	return *p
}

// InsertQuery describes where a new row is inserted. The target never
// depends on instance data, so an InsertQuery may be built once and reused
// for every put of its type.
type InsertQuery struct {
	Table string
}

// UpdateQuery describes which rows an update targets. Where holds exactly
// one "?" placeholder per WhereArgs entry, in matching order.
type UpdateQuery struct {
	Table     string
	Where     string
	WhereArgs []any
}

// Resolver is the fixed three-operation contract implemented by every
// generated put resolver.
type Resolver[T any] interface {
	// MapToInsertQuery returns the insert query; the result is identical
	// for every instance of T.
	MapToInsertQuery(obj T) InsertQuery
	// MapToUpdateQuery returns the update query matching obj's key columns.
	MapToUpdateQuery(obj T) UpdateQuery
	// MapToColumnValues maps every declared column of obj, in declaration
	// order.
	MapToColumnValues(obj T) *ColumnValues
}
