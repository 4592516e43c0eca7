package mock

import (
	"context"

	"github.com/learnlite/tableport/core"
)

type queryResult struct {
	rows []core.Row
	opts []ResultStreamOption
}

type adapterConfig struct {
	querySideEffects map[string]func(context.Context) error
	queryResults     map[string]queryResult

	resultStreamOptions []ResultStreamOption
}

type AdapterOption func(*adapterConfig)

func AdapterWithQuerySideEffect(query string, sideEffect func(context.Context) error) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.querySideEffects[query]
		if ok {
			panic("side effect already registered for query: " + query)
		}

		c.querySideEffects[query] = sideEffect
	}
}

// AdapterWithQueryResult registers a fixed result for a specific query.
func AdapterWithQueryResult(query string, rows []core.Row, opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		_, ok := c.queryResults[query]
		if ok {
			panic("result already registered for query: " + query)
		}

		c.queryResults[query] = queryResult{rows: rows, opts: opts}
	}
}

func AdapterWithResultStreamOpts(opts ...ResultStreamOption) AdapterOption {
	return func(c *adapterConfig) {
		c.resultStreamOptions = append(c.resultStreamOptions, opts...)
	}
}
