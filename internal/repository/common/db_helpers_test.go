package common

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExec запоминает запросы и отвечает заданным числом затронутых строк.
type recordingExec struct {
	queries  []string
	args     [][]interface{}
	affected int64
}

func (r *recordingExec) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.queries = append(r.queries, query)
	r.args = append(r.args, args)
	return driver.RowsAffected(r.affected), nil
}

func compactSQL(q string) string {
	return strings.Join(strings.Fields(q), " ")
}

func TestUpdateDisplayOrderBy_BuildsSingleBulkUpdate(t *testing.T) {
	exec := &recordingExec{affected: 3}
	placements := []Placement{{ID: 7, DisplayOrder: 1}, {ID: 3, DisplayOrder: 2}, {ID: 9, DisplayOrder: 3}}

	require.NoError(t, UpdateDisplayOrderBy(context.Background(), exec, "about_skills", "skill_id", placements))

	require.Len(t, exec.queries, 1, "весь порядок пишется одним запросом")
	assert.Equal(t,
		"UPDATE about_skills AS t SET display_order = v.ord "+
			"FROM (VALUES ($1::bigint, $2::int), ($3::bigint, $4::int), ($5::bigint, $6::int)) AS v(id, ord) "+
			"WHERE t.skill_id = v.id",
		compactSQL(exec.queries[0]))
	assert.Equal(t, []interface{}{int64(7), 1, int64(3), 2, int64(9), 3}, exec.args[0])
}

func TestUpdateDisplayOrderBy_MissingRowIsNotFound(t *testing.T) {
	exec := &recordingExec{affected: 1}
	err := UpdateDisplayOrder(context.Background(), exec, "projects",
		[]Placement{{ID: 1, DisplayOrder: 1}, {ID: 2, DisplayOrder: 2}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, exec.queries[0], "WHERE t.id = v.id")
}

func TestUpdateDisplayOrderBy_EmptyIsNoop(t *testing.T) {
	exec := &recordingExec{}
	require.NoError(t, UpdateDisplayOrder(context.Background(), exec, "skills", nil))
	assert.Empty(t, exec.queries)
}

func TestTranslatePQ(t *testing.T) {
	unique := &pq.Error{Code: "23505"}
	fk := &pq.Error{Code: "23503"}

	assert.ErrorIs(t, TranslatePQ(unique), ErrAlreadyExists)
	assert.ErrorIs(t, TranslatePQ(fk), ErrReferenced)

	plain := errors.New("connection reset")
	assert.Equal(t, plain, TranslatePQ(plain))
}
