package testhelpers

import (
	"context"

	tc "github.com/testcontainers/testcontainers-go"
	tcpsql "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/learnlite/tableport/adapters"
	"github.com/learnlite/tableport/core"
)

type PostgresContainer struct {
	*tcpsql.PostgresContainer
	ConnURL string
	Conn    *core.Connection
}

// NewPostgresContainer creates a new postgres container seeded with the six
// export tables and returns an open connection to it.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	seedFile, err := GetTestDataFile("postgres_seed.sql")
	if err != nil {
		return nil, err
	}

	ctr, err := tcpsql.Run(
		ctx,
		"postgres:16-alpine",
		tcpsql.BasicWaitStrategies(),
		tc.CustomizeRequest(tc.GenericContainerRequest{
			ProviderType: GetContainerProvider(),
		}),
		tcpsql.WithInitScripts(seedFile.Name()),
		tcpsql.WithDatabase("learning"),
	)
	if err != nil {
		return nil, err
	}

	connURL, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	conn, err := adapters.NewConnection("postgres", connURL)
	if err != nil {
		return nil, err
	}

	return &PostgresContainer{
		PostgresContainer: ctr,
		ConnURL:           connURL,
		Conn:              conn,
	}, nil
}
