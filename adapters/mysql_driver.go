package adapters

import (
	"context"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/builders"
)

var _ core.Driver = (*mysqlDriver)(nil)

type mysqlDriver struct {
	c *builders.Client
}

func (d *mysqlDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	con, err := d.c.Conn(ctx)
	if err != nil {
		return nil, err
	}
	cb := func() {
		con.Close()
	}
	defer func() {
		if err != nil {
			cb()
		}
	}()

	rows, err := con.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	rows.SetCallback(cb)

	return rows, nil
}

func (d *mysqlDriver) Close() {
	d.c.Close()
}
