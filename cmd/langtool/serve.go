package main

import (
	"github.com/spf13/cobra"

	"langtool/internal/adapters/httpserver"
)

var serveFlags struct {
	host   string
	port   int
	static string
	index  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the language selector page and a static directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		if flags.Changed("host") {
			cfg.Server.Host = serveFlags.host
		}
		if flags.Changed("port") {
			cfg.Server.Port = serveFlags.port
		}
		if flags.Changed("static") {
			cfg.Server.StaticDir = serveFlags.static
		}
		if flags.Changed("index") {
			cfg.Server.IndexFile = serveFlags.index
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		srv, err := httpserver.New(httpserver.Config{
			Host:            cfg.Server.Host,
			Port:            cfg.Server.Port,
			StaticDir:       cfg.Server.StaticDir,
			IndexFile:       cfg.Server.IndexFile,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			Locale:          cfg.Locale,
		}, translator, appLogger)
		if err != nil {
			return err
		}
		return srv.Start(cmd.Context())
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.host, "host", "", "interface to bind (default $SERVER_HOST, all interfaces)")
	f.IntVarP(&serveFlags.port, "port", "p", 0, "port to listen on (default $SERVER_PORT or 3000)")
	f.StringVar(&serveFlags.static, "static", "", "directory of static files (default: embedded assets)")
	f.StringVar(&serveFlags.index, "index", "", "HTML file returned for / (default: embedded page)")
}
