package put

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Execer is the subset of database/sql used to execute put operations.
// *sql.DB and *sql.Tx both satisfy it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Result reports what Execute did for one object.
type Result struct {
	// Inserted is true when a fresh row was inserted.
	Inserted bool
	// RowsUpdated is the number of rows the update matched.
	RowsUpdated int64
}

// Execute performs a put for obj: it updates the rows matched by the
// resolver's update query and inserts a fresh row when nothing matched.
// SQL is built with "?" placeholders; use a compatible driver.
func Execute[T any](ctx context.Context, db Execer, r Resolver[T], obj T) (Result, error) {
	cv := r.MapToColumnValues(obj)
	uq := r.MapToUpdateQuery(obj)

	update := sq.Update(uq.Table)
	for _, col := range cv.Columns() {
		v, _ := cv.Get(col)
		update = update.Set(col, v)
	}

	query, args, err := update.Where(sq.Expr(uq.Where, uq.WhereArgs...)).ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("building update for %s: %w", uq.Table, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, fmt.Errorf("updating %s: %w", uq.Table, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Result{}, fmt.Errorf("updating %s: %w", uq.Table, err)
	}

	if affected > 0 {
		return Result{RowsUpdated: affected}, nil
	}

	iq := r.MapToInsertQuery(obj)

	cols := cv.Columns()
	vals := make([]any, 0, len(cols))
	for _, col := range cols {
		v, _ := cv.Get(col)
		vals = append(vals, v)
	}

	query, args, err = sq.Insert(iq.Table).Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return Result{}, fmt.Errorf("building insert for %s: %w", iq.Table, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return Result{}, fmt.Errorf("inserting into %s: %w", iq.Table, err)
	}

	return Result{Inserted: true}, nil
}
