package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"langtool/internal/adapters/csvfile"
	"langtool/internal/adapters/source"
	"langtool/internal/application"
	"langtool/internal/infrastructure/database"
	"langtool/internal/ports/input"
	"langtool/internal/ports/output"
)

var exportFlags struct {
	input        string
	output       string
	language     string
	createSample bool
	skipDB       bool
	watch        bool
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Flatten a translation file into a Path,Value CSV",
	Long: `Flatten a translation file into a Path,Value CSV.

Sources may be JSON, YAML, TOML or a JS/TS module exporting an object literal.
Only string values are exported: booleans, numbers, arrays and null are dropped.
When DATABASE_URL is set the rows are also stored in PostgreSQL.`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportFlags.input, "input", "i", "", "source file (default $EXPORT_INPUT)")
	f.StringVarP(&exportFlags.output, "output", "o", "", "CSV file to write (default $EXPORT_OUTPUT)")
	f.StringVarP(&exportFlags.language, "language", "l", "", "language tag of the source (default $EXPORT_LANGUAGE)")
	f.BoolVar(&exportFlags.createSample, "create-sample", false, "write a demonstration source first when the input does not exist")
	f.BoolVar(&exportFlags.skipDB, "skip-db", false, "do not store rows in PostgreSQL even if DATABASE_URL is set")
	f.BoolVarP(&exportFlags.watch, "watch", "w", false, "export again each time the source changes")
}

func runExport(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Export.Input = exportFlags.input
	}
	if flags.Changed("output") {
		cfg.Export.Output = exportFlags.output
	}
	if flags.Changed("language") {
		cfg.Export.Language = exportFlags.language
	}
	if flags.Changed("create-sample") {
		cfg.Export.CreateSample = exportFlags.createSample
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	writers := []output.RowWriter{csvfile.NewWriter(cfg.Export.Output)}

	if cfg.Database.URL != "" && !exportFlags.skipDB {
		if err := database.RunMigrations(cfg.Database.URL, appLogger); err != nil {
			return err
		}
		pool, err := database.NewPool(ctx, cfg.Database.URL, appLogger)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()
		writers = append(writers, database.NewSink(database.NewExportRepository(pool)))
	}

	svc := application.NewExportService(source.NewLoader(), writers, translator, cfg.Locale, appLogger)
	req := input.ExportRequest{
		Input:        cfg.Export.Input,
		Language:     cfg.Export.Language,
		CreateSample: cfg.Export.CreateSample,
	}

	if exportFlags.watch {
		return svc.Watch(ctx, req)
	}
	if _, err := svc.Export(ctx, req); err != nil {
		return &reportedError{err: err}
	}
	return nil
}
