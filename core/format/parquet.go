package format

import (
	"bytes"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/learnlite/tableport/core"
)

var _ core.Formatter = (*Parquet)(nil)

type Parquet struct{}

func NewParquet() *Parquet {
	return &Parquet{}
}

// inferColumnType picks an arrow type based on the first non-nil value of the
// column. Columns with no values (or mixed unknown types) fall back to strings.
func (pf *Parquet) inferColumnType(rows []core.Row, col int) arrow.DataType {
	for _, row := range rows {
		if col >= len(row) || row[col] == nil {
			continue
		}

		switch row[col].(type) {
		case int, int32, int64, uint32, uint64:
			return arrow.PrimitiveTypes.Int64
		case float32, float64:
			return arrow.PrimitiveTypes.Float64
		case bool:
			return arrow.FixedWidthTypes.Boolean
		case time.Time:
			return arrow.FixedWidthTypes.Timestamp_us
		default:
			return arrow.BinaryTypes.String
		}
	}

	return arrow.BinaryTypes.String
}

func (pf *Parquet) appendValue(builder array.Builder, val any) error {
	if val == nil {
		builder.AppendNull()
		return nil
	}

	switch b := builder.(type) {
	case *array.Int64Builder:
		switch v := val.(type) {
		case int:
			b.Append(int64(v))
		case int32:
			b.Append(int64(v))
		case int64:
			b.Append(v)
		case uint32:
			b.Append(int64(v))
		case uint64:
			b.Append(int64(v))
		default:
			b.AppendNull()
		}
	case *array.Float64Builder:
		switch v := val.(type) {
		case float32:
			b.Append(float64(v))
		case float64:
			b.Append(v)
		default:
			b.AppendNull()
		}
	case *array.BooleanBuilder:
		v, ok := val.(bool)
		if !ok {
			b.AppendNull()
			return nil
		}
		b.Append(v)
	case *array.TimestampBuilder:
		v, ok := val.(time.Time)
		if !ok {
			b.AppendNull()
			return nil
		}
		b.Append(arrow.Timestamp(v.UTC().UnixMicro()))
	case *array.StringBuilder:
		b.Append(fmt.Sprint(val))
	default:
		return fmt.Errorf("unsupported arrow builder: %T", builder)
	}

	return nil
}

func (pf *Parquet) Format(header core.Header, rows []core.Row, _ *core.FormatterOptions) ([]byte, error) {
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{
			Name:     name,
			Type:     pf.inferColumnType(rows, i),
			Nullable: true,
		}
	}
	schema := arrow.NewSchema(fields, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	for _, row := range rows {
		for i := range fields {
			var val any
			if i < len(row) {
				val = row[i]
			}

			if err := pf.appendValue(builder.Field(i), val); err != nil {
				return nil, err
			}
		}
	}

	record := builder.NewRecord()
	defer record.Release()

	b := new(bytes.Buffer)

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	writer, err := pqarrow.NewFileWriter(schema, b, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return nil, fmt.Errorf("pqarrow.NewFileWriter: %w", err)
	}

	if err := writer.Write(record); err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("writer.Write: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("writer.Close: %w", err)
	}

	return b.Bytes(), nil
}
