package core

import "fmt"

// Result is the drained form of the ResultStream iterator
type Result struct {
	header Header
	meta   *Meta
	rows   []Row

	isFilled bool
}

// Drain consumes the ResultStream and stores all of its rows.
// This can be done only once - the stream is closed on return.
func (r *Result) Drain(iter ResultStream) error {
	defer iter.Close()

	r.header = iter.Header()
	r.meta = iter.Meta()
	r.rows = make([]Row, 0)

	for iter.HasNext() {
		row, err := iter.Next()
		if err != nil {
			r.isFilled = false
			return err
		}

		r.rows = append(r.rows, row)
	}

	r.isFilled = true
	return nil
}

func (r *Result) Len() int {
	return len(r.rows)
}

func (r *Result) IsEmpty() bool {
	return !r.isFilled
}

func (r *Result) Header() Header {
	return r.header
}

func (r *Result) Meta() *Meta {
	return r.meta
}

func (r *Result) Rows() []Row {
	return r.rows
}

func (r *Result) Format(formatter Formatter) ([]byte, error) {
	opts := &FormatterOptions{
		SchemaType: r.meta.SchemaType,
	}

	out, err := formatter.Format(r.header, r.rows, opts)
	if err != nil {
		return nil, fmt.Errorf("formatter.Format: %w", err)
	}

	return out, nil
}
