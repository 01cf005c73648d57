package put

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int32
	Y int32
}

// pointResolver mirrors the shape of a generated resolver.
type pointResolver struct{}

func (pointResolver) MapToInsertQuery(obj point) InsertQuery {
	return InsertQuery{Table: "points"}
}

func (pointResolver) MapToUpdateQuery(obj point) UpdateQuery {
	return UpdateQuery{
		Table:     "points",
		Where:     "x = ?",
		WhereArgs: []any{obj.X},
	}
}

func (pointResolver) MapToColumnValues(obj point) *ColumnValues {
	cv := NewColumnValues(2)
	cv.Put("x", obj.X)
	cv.Put("y", obj.Y)

	return cv
}

func TestExecute_UpdateHit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE points SET x = ?, y = ? WHERE x = ?")).
		WithArgs(int32(5), int32(9), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := Execute[point](context.Background(), db, pointResolver{}, point{X: 5, Y: 9})
	require.NoError(t, err)

	assert.False(t, res.Inserted)
	assert.Equal(t, int64(1), res.RowsUpdated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_UpdateMissFallsBackToInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE points SET x = ?, y = ? WHERE x = ?")).
		WithArgs(int32(5), int32(9), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO points (x,y) VALUES (?,?)")).
		WithArgs(int32(5), int32(9)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := Execute[point](context.Background(), db, pointResolver{}, point{X: 5, Y: 9})
	require.NoError(t, err)

	assert.True(t, res.Inserted)
	assert.Zero(t, res.RowsUpdated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_UpdateErrorPropagates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE points").
		WillReturnError(assert.AnError)

	_, err = Execute[point](context.Background(), db, pointResolver{}, point{X: 5, Y: 9})
	assert.ErrorIs(t, err, assert.AnError)
}
