package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/learnlite/tableport/adapters"
	"github.com/learnlite/tableport/export"
	"github.com/learnlite/tableport/internal/logger"
)

// Build variables - set by ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

type cliFlags struct {
	outDir      string
	formats     string
	sinceDays   int
	dbType      string
	envFile     string
	showVersion bool
}

func main() {
	var flags cliFlags

	flag.StringVar(&flags.outDir, "out-dir", "", "output directory (default: \"data\" next to the binary)")
	flag.StringVar(&flags.formats, "formats", "csv,parquet", "comma separated output formats (csv, parquet, json, table)")
	flag.IntVar(&flags.sinceDays, "since-days", -1, "only export log rows newer than this many days (negative: full history)")
	flag.StringVar(&flags.dbType, "db-type", "mysql", "database type (mysql, postgres, sqlite, duckdb)")
	flag.StringVar(&flags.envFile, "env-file", "", "env file to load (default: search backend/.env, .env, ../backend/.env)")
	flag.BoolVar(&flags.showVersion, "version", false, "print version information")
	flag.Parse()

	if flags.showVersion {
		fmt.Printf("tableport %s (%s)\n", version, commit)
		return
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags cliFlags) error {
	log := logger.New()

	formats, err := export.ParseFormats(strings.Split(flags.formats, ","))
	if err != nil {
		return err
	}

	envPath, err := loadEnvFile(flags.envFile)
	if err != nil {
		return err
	}
	log.Infof("loaded environment from %s", envPath)

	outDir := flags.outDir
	if outDir == "" {
		outDir = defaultOutDir()
	}

	cfg := loadDBConfig()

	conn, err := adapters.NewConnection(flags.dbType, cfg.DSN(flags.dbType))
	if err != nil {
		return err
	}
	defer conn.Close()

	exporter := export.New(conn, outDir, formats,
		export.WithLogger(log),
		export.WithSinceDays(flags.sinceDays),
	)

	reports, err := exporter.Run(context.Background())
	if err != nil {
		return err
	}

	printSummary(reports)
	fmt.Println("Export completed. Files are under:", outDir)

	return nil
}

func printSummary(reports []*export.TableReport) {
	totalRows := 0
	totalFiles := 0

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Table", "Rows", "Files"})
	for _, report := range reports {
		t.AppendRow(table.Row{report.Table, report.Rows, strings.Join(report.Files, ", ")})
		totalRows += report.Rows
		totalFiles += len(report.Files)
	}
	t.AppendSeparator()
	t.AppendFooter(table.Row{"total", totalRows, fmt.Sprintf("%d files", totalFiles)})
	t.SetStyle(table.StyleLight)
	t.Render()
}
