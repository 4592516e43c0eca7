package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/core/format"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Format is a supported output file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
	FormatJSON    Format = "json"
	FormatTable   Format = "table"
)

// DefaultFormats matches the default export set (tabular text + columnar).
func DefaultFormats() []Format {
	return []Format{FormatCSV, FormatParquet}
}

// ParseFormats converts user supplied format names, deduplicating on the way.
func ParseFormats(names []string) ([]Format, error) {
	var formats []Format
	seen := make(map[Format]bool)

	for _, name := range names {
		f := Format(strings.ToLower(strings.TrimSpace(name)))
		switch f {
		case FormatCSV, FormatParquet, FormatJSON, FormatTable:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
		}

		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}

	if len(formats) < 1 {
		return nil, fmt.Errorf("%w: no formats provided", ErrUnknownFormat)
	}

	return formats, nil
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

func (f Format) formatter() core.Formatter {
	switch f {
	case FormatParquet:
		return format.NewParquet()
	case FormatJSON:
		return format.NewJSON()
	case FormatTable:
		return format.NewTable()
	default:
		return format.NewCSV()
	}
}

// BestEffort formats don't abort the run on failure - a warning is logged and
// remaining outputs are still written.
func (f Format) BestEffort() bool {
	return f == FormatParquet
}
