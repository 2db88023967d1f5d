package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/hydrate/internal/theme"
	"github.com/emiliopalmerini/hydrate/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the web dashboard server.

Reads configuration from the environment and from a .env file in the
working directory when present. HYDRATE_API_URL is required.

Examples:
  hydrate serve              # Start on PORT (default 8080)
  hydrate serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Cancel on interrupt so the server shuts down gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(context.Background()); err != nil {
			app.Logger.Warn("failed to close resources", "error", err)
		}
	}()

	api, err := app.API()
	if err != nil {
		return err
	}

	loc, err := app.Config.Location()
	if err != nil {
		return err
	}

	port := app.Config.Server.Port
	if cmd.Flags().Changed("port") {
		port = servePort
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port %d", port)
	}

	server := web.NewServer(port, api,
		web.WithMetrics(app.Metrics),
		web.WithThemeStore(theme.NewCookieStore(app.Config.Server.SecureCookies)),
		web.WithLocation(loc),
		web.WithDeviceID(app.Config.API.DeviceID),
		web.WithLogger(app.Logger),
		web.WithShutdownTimeout(app.Config.Server.ShutdownTimeout),
	)
	return server.Start(ctx)
}
