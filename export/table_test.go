package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnlite/tableport/export"
)

func TestTables(t *testing.T) {
	tables := export.Tables()
	require.Len(t, tables, 6)

	wantNames := []string{
		"users", "user_profiles",
		"search_logs", "click_logs", "completed_courses", "in_progress",
	}
	for i, table := range tables {
		assert.Equal(t, wantNames[i], table.Name)
	}

	// identity tables are never filtered
	assert.False(t, tables[0].Filterable)
	assert.False(t, tables[1].Filterable)
	for _, table := range tables[2:] {
		assert.True(t, table.Filterable, table.Name)
	}
}

func TestSinceClause(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	got := export.SinceClause(now, 30)
	assert.Equal(t, " WHERE created_at >= '2024-05-02 10:00:00'", got)
}

func TestSinceClause_ZeroDays(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	got := export.SinceClause(now, 0)
	assert.Equal(t, " WHERE created_at >= '2024-06-01 10:00:00'", got)
}

func TestTable_BuildQuery(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	filterable := export.Table{
		Name:       "search_logs",
		Query:      "SELECT id, user_id, query, created_at FROM search_logs",
		Filterable: true,
	}
	identity := export.Table{
		Name:  "users",
		Query: "SELECT id, email, role, created_at FROM users",
	}

	t.Run("no filter requested", func(t *testing.T) {
		assert.Equal(t, filterable.Query, filterable.BuildQuery(now, -1))
	})

	t.Run("filterable table gets cutoff", func(t *testing.T) {
		want := "SELECT id, user_id, query, created_at FROM search_logs" +
			" WHERE created_at >= '2024-05-02 10:00:00'"
		assert.Equal(t, want, filterable.BuildQuery(now, 30))
	})

	t.Run("identity table ignores cutoff", func(t *testing.T) {
		assert.Equal(t, identity.Query, identity.BuildQuery(now, 30))
	})
}
