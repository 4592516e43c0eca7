package testhelpers

import (
	"context"

	tc "github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/learnlite/tableport/adapters"
	"github.com/learnlite/tableport/core"
)

type MySQLContainer struct {
	*tcmysql.MySQLContainer
	ConnURL string
	Conn    *core.Connection
}

// NewMySQLContainer creates a new MySQL container seeded with the six export
// tables and returns an open connection to it.
func NewMySQLContainer(ctx context.Context) (*MySQLContainer, error) {
	seedFile, err := GetTestDataFile("mysql_seed.sql")
	if err != nil {
		return nil, err
	}

	ctr, err := tcmysql.Run(
		ctx,
		"mysql:9.2.0",
		tc.CustomizeRequest(tc.GenericContainerRequest{
			ProviderType: GetContainerProvider(),
		}),
		tcmysql.WithDatabase("learning"),
		tcmysql.WithUsername("root"),
		tcmysql.WithPassword("password"),
		tcmysql.WithScripts(seedFile.Name()),
	)
	if err != nil {
		return nil, err
	}

	connURL, err := ctr.ConnectionString(ctx, "tls=skip-verify")
	if err != nil {
		return nil, err
	}

	conn, err := adapters.NewConnection("mysql", connURL)
	if err != nil {
		return nil, err
	}

	return &MySQLContainer{
		MySQLContainer: ctr,
		ConnURL:        connURL,
		Conn:           conn,
	}, nil
}
