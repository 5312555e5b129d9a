package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the capacity checks over HTTP",
	Long: `Start a JSON HTTP API exposing the section catalog, the load
combinations and every capacity check.

Endpoints:
  GET  /api/health
  GET  /api/profiles[?prefix=WF 300]
  GET  /api/profiles/{name}
  GET  /api/profiles/{name}/diagram.png
  GET  /api/checks
  POST /api/checks/{kind}
  POST /api/checks/{kind}/pdf[?project=name]
  POST /api/loads[?set=gravity]

Requests are rate limited per client address (server.rate_limit and
server.rate_burst). The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  steelcalc serve
  steelcalc serve --port 9000
  STEELCALC_SERVER_RATE_LIMIT=20 steelcalc serve`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cfg.Server
		if cmd.Flags().Changed("host") {
			sc.Host = serveHost
		}
		if cmd.Flags().Changed("port") {
			sc.Port = servePort
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(eval, logger, sc.RateLimit, sc.RateBurst)
		return srv.ListenAndServe(ctx, sc)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host [default from config]")
	serveCmd.Flags().IntVarP(&servePort, "port", "P", 0, "Listen port [default from config]")
}
