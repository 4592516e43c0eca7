//go:build cgo && ((darwin && (amd64 || arm64)) || (linux && (amd64 || arm64 || riscv64)))

package adapters

import (
	"context"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/builders"
)

var _ core.Driver = (*duckDriver)(nil)

type duckDriver struct {
	c *builders.Client
}

func (d *duckDriver) Query(ctx context.Context, query string) (core.ResultStream, error) {
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

func (d *duckDriver) Close() {
	d.c.Close()
}
