package core

import (
	"context"
	"fmt"
)

type (
	// Adapter is an object which allows to connect to a database via url
	Adapter interface {
		Connect(url string) (Driver, error)
	}

	// Driver is an interface for a specific database driver
	Driver interface {
		Query(context.Context, string) (ResultStream, error)
		Close()
	}
)

// Connection wraps a driver and drains query results into memory.
type Connection struct {
	typ    string
	url    string
	driver Driver
}

func NewConnection(typ, url string, adapter Adapter) (*Connection, error) {
	driver, err := adapter.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("adapter.Connect: %w", err)
	}

	return &Connection{
		typ:    typ,
		url:    url,
		driver: driver,
	}, nil
}

func (c *Connection) GetType() string {
	return c.typ
}

func (c *Connection) GetURL() string {
	return c.url
}

// Query executes the query on the underlying driver and materializes the
// whole result set. The stream is always closed before returning.
func (c *Connection) Query(ctx context.Context, query string) (*Result, error) {
	stream, err := c.driver.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("driver.Query: %w", err)
	}

	result := new(Result)
	if err := result.Drain(stream); err != nil {
		return nil, fmt.Errorf("result.Drain: %w", err)
	}

	return result, nil
}

func (c *Connection) Close() {
	c.driver.Close()
}
