package mock

import (
	"context"
	"fmt"

	"github.com/learnlite/tableport/core"
)

var _ core.Driver = (*driver)(nil)

type driver struct {
	data   []core.Row
	config *adapterConfig
}

func (d *driver) Query(ctx context.Context, query string) (core.ResultStream, error) {
	eff, ok := d.config.querySideEffects[query]
	if ok {
		err := eff(ctx)
		if err != nil {
			return nil, fmt.Errorf("side effect error: %w", err)
		}
	}

	// per-query result has priority over default data
	if res, ok := d.config.queryResults[query]; ok {
		return NewResultStream(res.rows, res.opts...), nil
	}

	return NewResultStream(d.data, d.config.resultStreamOptions...), nil
}

func (d *driver) Close() {}

var _ core.Adapter = (*Adapter)(nil)

type Adapter struct {
	data   []core.Row
	config *adapterConfig
}

func NewAdapter(data []core.Row, opts ...AdapterOption) *Adapter {
	config := &adapterConfig{
		querySideEffects: make(map[string]func(context.Context) error),
		queryResults:     make(map[string]queryResult),

		resultStreamOptions: []ResultStreamOption{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Adapter{
		data:   data,
		config: config,
	}
}

func (a *Adapter) Connect(_ string) (core.Driver, error) {
	return &driver{
		data:   a.data,
		config: a.config,
	}, nil
}
