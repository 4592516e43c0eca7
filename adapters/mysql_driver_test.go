package adapters

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnlite/tableport/core/builders"
)

// setupMysqlTestDriver helper function to setup mysql driver for testing
func setupMysqlTestDriver(t *testing.T) (*mysqlDriver, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	driver := &mysqlDriver{
		c: builders.NewClient(db),
	}

	return driver, mock
}

func Test_mysqlDriver_Query(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantRows *sqlmock.Rows
		wantErr  bool
	}{
		{
			name:  "simple select query",
			query: "SELECT id, email, role, created_at FROM users",
			wantRows: sqlmock.NewRows([]string{"id", "email", "role", "created_at"}).
				AddRow(1, "john@example.com", "student", "2024-05-01 10:00:00"),
		},
		{
			name:    "invalid query",
			query:   "INVALID QUERY",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, mock := setupMysqlTestDriver(t)

			if tt.wantErr {
				mock.ExpectQuery(tt.query).WillReturnError(sql.ErrConnDone)
			} else {
				mock.ExpectQuery(tt.query).WillReturnRows(tt.wantRows)
			}

			got, err := driver.Query(context.Background(), tt.query)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func Test_GetAdapter(t *testing.T) {
	t.Run("registered alias", func(t *testing.T) {
		adapter, err := GetAdapter("mysql")
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})

	t.Run("unknown alias", func(t *testing.T) {
		_, err := GetAdapter("cassandra")
		assert.ErrorIs(t, err, ErrUnsupportedTypeAlias)
	})
}
