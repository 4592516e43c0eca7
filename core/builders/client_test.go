package builders_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/builders"
)

func TestClient_Query(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	r.NoError(err)

	client := builders.NewClient(db)
	defer client.Close()

	mock.ExpectQuery("SELECT id, email FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(int64(1), []byte("john@example.com")).
			AddRow(int64(2), []byte("jane@example.com")))

	conn, err := client.Conn(context.Background())
	r.NoError(err)
	defer conn.Close()

	stream, err := conn.Query(context.Background(), "SELECT id, email FROM users")
	r.NoError(err)
	defer stream.Close()

	r.Equal(core.Header{"id", "email"}, stream.Header())

	var rows []core.Row
	for stream.HasNext() {
		row, err := stream.Next()
		r.NoError(err)
		rows = append(rows, row)
	}

	// byte slices are converted to strings by the default type processor
	assert.Equal(t, []core.Row{
		{int64(1), "john@example.com"},
		{int64(2), "jane@example.com"},
	}, rows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_QueryCustomTypeProcessor(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	r.NoError(err)

	client := builders.NewClient(db,
		builders.WithCustomTypeProcessor("varchar", func(val any) any {
			return "processed"
		}),
	)
	defer client.Close()

	cols := []*sqlmock.Column{
		sqlmock.NewColumn("name").OfType("VARCHAR", ""),
	}
	mock.ExpectQuery("SELECT name FROM users").
		WillReturnRows(sqlmock.NewRowsWithColumnDefinition(cols...).AddRow("raw"))

	conn, err := client.Conn(context.Background())
	r.NoError(err)
	defer conn.Close()

	stream, err := conn.Query(context.Background(), "SELECT name FROM users")
	r.NoError(err)
	defer stream.Close()

	r.True(stream.HasNext())
	row, err := stream.Next()
	r.NoError(err)
	assert.Equal(t, core.Row{"processed"}, row)
}

func TestClient_QueryError(t *testing.T) {
	r := require.New(t)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	r.NoError(err)

	client := builders.NewClient(db)
	defer client.Close()

	mock.ExpectQuery("SELECT broken").WillReturnError(assert.AnError)

	conn, err := client.Conn(context.Background())
	r.NoError(err)
	defer conn.Close()

	_, err = conn.Query(context.Background(), "SELECT broken")
	r.Error(err)
}
