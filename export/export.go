package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/learnlite/tableport/core"
	"github.com/learnlite/tableport/internal/logger"
)

// TableReport is the outcome of a single table export.
type TableReport struct {
	Table string
	Rows  int
	Files []string
}

// Exporter runs the fixed table queries on a connection and writes each
// rowset to the output directory in the requested formats.
type Exporter struct {
	conn    *core.Connection
	outDir  string
	formats []Format
	log     logger.Logger

	runID     string
	sinceDays int
	now       func() time.Time
}

type Option func(*Exporter)

// WithSinceDays restricts filterable tables to rows newer than the given
// number of days. Negative means no filter.
func WithSinceDays(days int) Option {
	return func(e *Exporter) {
		e.sinceDays = days
	}
}

func WithLogger(log logger.Logger) Option {
	return func(e *Exporter) {
		e.log = log
	}
}

// WithClock overrides the time source used for the recency cutoff.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

func New(conn *core.Connection, outDir string, formats []Format, opts ...Option) *Exporter {
	e := &Exporter{
		conn:    conn,
		outDir:  outDir,
		formats: formats,

		runID:     uuid.New().String(),
		sinceDays: -1,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	if len(e.formats) < 1 {
		e.formats = DefaultFormats()
	}
	if e.log == nil {
		e.log = logger.New()
	}

	return e
}

// ExportTable executes the table query, materializes the full rowset and
// writes one file per requested format. Best-effort formats log a warning on
// failure instead of aborting.
func (e *Exporter) ExportTable(ctx context.Context, t Table) (*TableReport, error) {
	e.log.Infof("exporting %s ...", t.Name)

	query := t.BuildQuery(e.now(), e.sinceDays)

	result, err := e.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", t.Name, err)
	}

	report := &TableReport{
		Table: t.Name,
		Rows:  result.Len(),
	}

	for _, f := range e.formats {
		path := filepath.Join(e.outDir, t.Name+"."+f.Ext())

		out, err := result.Format(f.formatter())
		if err == nil {
			err = os.WriteFile(path, out, 0o644)
		}
		if err != nil {
			if f.BestEffort() {
				e.log.Warnf("%s export for %s failed (%s), continuing without it", f, t.Name, err)
				continue
			}
			return nil, fmt.Errorf("export %s as %s: %w", t.Name, f, err)
		}

		report.Files = append(report.Files, path)
	}

	e.log.Infof(" -> exported %d rows to: %v", report.Rows, report.Files)

	return report, nil
}

// Run creates the output directory and exports all tables in order. The first
// query or non-best-effort write failure aborts the run.
func (e *Exporter) Run(ctx context.Context) ([]*TableReport, error) {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	e.log.Infof("starting export run %s into %s", e.runID, e.outDir)

	var reports []*TableReport
	for _, t := range Tables() {
		report, err := e.ExportTable(ctx, t)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}
