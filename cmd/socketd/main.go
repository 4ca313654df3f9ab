// Command socketd serves the legacy JSON-over-TCP protocol on its own,
// without the HTTP API, for deployments that only need the desktop clients.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aymanebt/tptrack/internal/bootstrap"
	"github.com/aymanebt/tptrack/internal/pkg/logger"
	"github.com/aymanebt/tptrack/internal/socket"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup database")
		os.Exit(1)
	}
	defer dbPool.Close()

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to setup dependencies")
		os.Exit(1)
	}

	srv := socket.NewServer(deps.Services, lgr)

	go func() {
		osSignals := make(chan os.Signal, 1)
		signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
		sig := <-osSignals
		lgr.Info().Str("signal", sig.String()).Msg("Shutting down socket server...")
		srv.Shutdown()
	}()

	if err := srv.Listen(":" + cfg.Socket.Port); err != nil {
		lgr.Error().Err(err).Msg("Socket server failed")
		os.Exit(1)
	}

	lgr.Info().Msg("Socket server stopped.")
}
