package adapters

import (
	"errors"
	"fmt"

	"github.com/learnlite/tableport/core"
)

var (
	errNoValidTypeAliases   = errors.New("no valid type aliases provided")
	ErrUnsupportedTypeAlias = errors.New("no driver registered for provided type alias")
)

// registeredAdapters holds implemented adapters - specific adapters register
// themselves in their init functions. The main reason is to be able to compile
// the binary without unsupported os/arch of specific drivers.
var registeredAdapters = make(map[string]core.Adapter)

// register registers a new adapter for specific database
func register(adapter core.Adapter, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTypeAliases
	}

	invalidCount := 0
	for _, alias := range aliases {
		if alias == "" {
			invalidCount++
			continue
		}
		registeredAdapters[alias] = adapter
	}

	if invalidCount == len(aliases) {
		return errNoValidTypeAliases
	}

	return nil
}

// GetAdapter returns the adapter registered under the given type alias.
func GetAdapter(typ string) (core.Adapter, error) {
	adapter, ok := registeredAdapters[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTypeAlias, typ)
	}

	return adapter, nil
}

// NewConnection is a wrapper around core.NewConnection that uses the internal
// registry for adapter lookup.
func NewConnection(typ, url string) (*core.Connection, error) {
	adapter, err := GetAdapter(typ)
	if err != nil {
		return nil, err
	}

	c, err := core.NewConnection(typ, url, adapter)
	if err != nil {
		return nil, fmt.Errorf("core.NewConnection: %w", err)
	}

	return c, nil
}
