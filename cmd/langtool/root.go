package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"langtool/internal/config"
	"langtool/internal/infrastructure/i18n"
)

// reportedError wraps an error that has already been logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

var (
	cfg        *config.Config
	appLogger  *log.Logger
	translator *i18n.Translator

	rootCmd = &cobra.Command{
		Use:           "langtool",
		Short:         "Export translation trees to CSV and serve the language selector page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			appLogger = newLogger(cfg.LogLevel)
			translator = i18n.NewTranslator(cfg.Locale, appLogger)
			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func newLogger(level string) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "langtool",
		ReportTimestamp: true,
		Level:           lvl,
	})
}

// logger returns the configured logger, or a default one when configuration
// failed to load.
func logger() *log.Logger {
	if appLogger == nil {
		return newLogger("info")
	}
	return appLogger
}
