package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"langtool/internal/adapters/csvfile"
	"langtool/internal/adapters/source"
	"langtool/internal/application"
	"langtool/internal/domain/entities"
	"langtool/internal/infrastructure/database"
)

var inspectFlags struct {
	input    string
	language string
	fromDB   bool
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the flattened rows of a translation file without writing anything",
	Long: `Print the flattened rows of a translation file without writing anything.

With --from-db the rows of the latest export recorded in PostgreSQL for
--language are printed instead.`,
	RunE: runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVarP(&inspectFlags.input, "input", "i", "", "source file (default $EXPORT_INPUT)")
	f.StringVarP(&inspectFlags.language, "language", "l", "", "language to read with --from-db (default $EXPORT_LANGUAGE)")
	f.BoolVar(&inspectFlags.fromDB, "from-db", false, "print the latest export stored in PostgreSQL")
}

func runInspect(cmd *cobra.Command, _ []string) error {
	var (
		rows    []entities.Row
		skipped int
		err     error
	)
	if inspectFlags.fromDB {
		rows, err = storedRows(cmd)
	} else {
		rows, skipped, err = sourceRows(cmd)
	}
	if err != nil {
		return err
	}

	// Paths only rebuild the same tree when no key contains the separator.
	rebuilt := application.Flatten(application.Unflatten(rows), "")
	if !slices.Equal(rebuilt, rows) {
		appLogger.Warn(translator.T(cfg.Locale, "inspect.ambiguous", map[string]any{"Separator": application.PathSeparator}))
	}
	appLogger.Info(translator.T(cfg.Locale, "inspect.done", map[string]any{"Count": len(rows), "Skipped": skipped}))

	out := cmd.OutOrStdout()
	if err := csvfile.Encode(out, rows); err != nil {
		return err
	}
	if len(rows) > 0 {
		_, err = io.WriteString(out, "\n")
	}
	return err
}

func sourceRows(cmd *cobra.Command) ([]entities.Row, int, error) {
	path := cfg.Export.Input
	if cmd.Flags().Changed("input") {
		path = inspectFlags.input
	}
	svc := application.NewExportService(source.NewLoader(), nil, translator, cfg.Locale, appLogger)
	res, err := svc.Inspect(cmd.Context(), path)
	if err != nil {
		return nil, 0, &reportedError{err: err}
	}
	return res.Rows, res.Skipped, nil
}

func storedRows(cmd *cobra.Command) ([]entities.Row, error) {
	if cfg.Database.URL == "" {
		return nil, errors.New("inspect: --from-db needs DATABASE_URL")
	}
	language := cfg.Export.Language
	if cmd.Flags().Changed("language") {
		language = inspectFlags.language
	}

	ctx := cmd.Context()
	pool, err := database.NewPool(ctx, cfg.Database.URL, appLogger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	svc := application.NewStoredExportService(database.NewExportRepository(pool), translator, cfg.Locale, appLogger)
	res, err := svc.Latest(ctx, language)
	if err != nil {
		return nil, &reportedError{err: err}
	}
	return res.Rows, nil
}
