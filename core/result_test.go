package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/mock"
)

func TestResult_Drain(t *testing.T) {
	r := require.New(t)

	rows := mock.NewRows(0, 10)
	stream := mock.NewResultStream(rows,
		mock.ResultStreamWithHeader(core.Header{"id", "name"}),
	)

	result := new(core.Result)
	err := result.Drain(stream)
	r.NoError(err)

	r.False(result.IsEmpty())
	r.Equal(10, result.Len())
	r.Equal(core.Header{"id", "name"}, result.Header())
	r.Equal(rows, result.Rows())
}

func TestResult_DrainEmpty(t *testing.T) {
	r := require.New(t)

	result := new(core.Result)
	err := result.Drain(mock.NewResultStream(nil))
	r.NoError(err)

	r.False(result.IsEmpty())
	r.Equal(0, result.Len())
}

func TestResult_DrainError(t *testing.T) {
	r := require.New(t)

	stream := mock.NewResultStream(mock.NewRows(0, 10),
		mock.ResultStreamWithFailAfter(5),
	)

	result := new(core.Result)
	err := result.Drain(stream)
	r.Error(err)
	r.True(result.IsEmpty())
}

func TestConnection_Query(t *testing.T) {
	r := require.New(t)

	rows := mock.NewRows(0, 3)

	connection, err := core.NewConnection("mock", "", mock.NewAdapter(rows))
	r.NoError(err)
	defer connection.Close()

	result, err := connection.Query(context.Background(), "SELECT * FROM anything")
	r.NoError(err)

	r.Equal(3, result.Len())
	r.Equal(rows, result.Rows())
}

func TestConnection_QueryError(t *testing.T) {
	r := require.New(t)

	adapter := mock.NewAdapter(nil,
		mock.AdapterWithQuerySideEffect("SELECT boom", func(_ context.Context) error {
			return context.DeadlineExceeded
		}),
	)

	connection, err := core.NewConnection("mock", "", adapter)
	r.NoError(err)
	defer connection.Close()

	_, err = connection.Query(context.Background(), "SELECT boom")
	r.Error(err)
}
