package mock

import (
	"github.com/learnlite/tableport/core"
)

type resultStreamConfig struct {
	failAfter int
	meta      *core.Meta
	header    core.Header
}

type ResultStreamOption func(*resultStreamConfig)

// ResultStreamWithFailAfter makes Next return an error once the given
// number of rows has been read.
func ResultStreamWithFailAfter(n int) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.failAfter = n
	}
}

func ResultStreamWithMeta(meta *core.Meta) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.meta = meta
	}
}

func ResultStreamWithHeader(header core.Header) ResultStreamOption {
	return func(c *resultStreamConfig) {
		c.header = header
	}
}
