package main

import (
	"os"

	"github.com/aymanebt/tptrack/internal/pkg/logger"
	"github.com/aymanebt/tptrack/internal/server"
)

// @title TPTrack API
// @version 1.0
// @description Practical work management: attendance, analytics, assignments and announcements.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
