package adapters

import (
	"context"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/builders"
)

var _ core.Driver = (*postgresDriver)(nil)

type postgresDriver struct {
	c *builders.Client
}

func (d *postgresDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
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

func (d *postgresDriver) Close() {
	d.c.Close()
}
