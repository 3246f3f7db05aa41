package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking-garage/internal/logging"
	"parking-garage/internal/parking"
	"parking-garage/internal/server"
)

var (
	mode          = flag.String("mode", "cli", "Mode to run: cli, server, or both")
	port          = flag.String("port", "8080", "Port for HTTP server")
	floors        = flag.Int("floors", 3, "Number of floors (server mode)")
	spotsPerFloor = flag.Int("spots-per-floor", 10, "Number of spots per floor (server mode)")
	dev           = flag.Bool("dev", false, "Development mode logging")
)

func main() {
	flag.Parse()
	logging.Init(*dev)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetryProvider, err := parking.NewTelemetryProvider()
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	switch *mode {
	case "cli":
		runCLI(ctx, cancel, telemetryProvider, sigChan)
	case "server":
		runServer(ctx, cancel, telemetryProvider, sigChan)
	case "both":
		runBoth(ctx, cancel, telemetryProvider, sigChan)
	default:
		logging.Logger().Fatal().Str("mode", *mode).Msg("invalid mode, must be cli, server, or both")
	}
}

func runCLI(ctx context.Context, cancel context.CancelFunc, telemetryProvider *parking.TelemetryProvider, sigChan chan os.Signal) {
	go func() {
		<-sigChan
		logging.Logger().Info().Msg("shutting down")
		cancel()
	}()

	shell := parking.NewShell(telemetryProvider)
	shell.Run(ctx)

	shutdownTelemetry(telemetryProvider)
}

func runServer(ctx context.Context, cancel context.CancelFunc, telemetryProvider *parking.TelemetryProvider, sigChan chan os.Signal) {
	parkingLot, err := parking.NewInstrumentedParkingLot(*floors, *spotsPerFloor, telemetryProvider)
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("failed to create parking garage")
	}

	srv := server.NewServer(*port, parkingLot)

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	logging.Logger().Info().
		Str("port", *port).
		Int("floors", *floors).
		Int("spots_per_floor", *spotsPerFloor).
		Msg("starting server mode")
	if err := srv.Start(); err != nil && err != context.Canceled {
		logging.Logger().Error().Err(err).Msg("server error")
	}

	shutdownTelemetry(telemetryProvider)
}

func runBoth(ctx context.Context, cancel context.CancelFunc, telemetryProvider *parking.TelemetryProvider, sigChan chan os.Signal) {
	parkingLot, err := parking.NewInstrumentedParkingLot(*floors, *spotsPerFloor, telemetryProvider)
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("failed to create parking garage")
	}

	srv := server.NewServer(*port, parkingLot)

	serverDone := make(chan error, 1)
	go func() {
		logging.Logger().Info().Str("port", *port).Msg("starting HTTP server")
		serverDone <- srv.Start()
	}()

	cliDone := make(chan bool, 1)
	go func() {
		shell := parking.NewShell(telemetryProvider)
		shell.Run(ctx)
		cliDone <- true
	}()

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	select {
	case err := <-serverDone:
		if err != nil && err != context.Canceled {
			logging.Logger().Error().Err(err).Msg("server error")
		}
	case <-cliDone:
		logging.Logger().Info().Msg("CLI exited")
	case <-ctx.Done():
		logging.Logger().Info().Msg("context cancelled")
	}

	shutdownTelemetry(telemetryProvider)
}

func shutdownTelemetry(telemetryProvider *parking.TelemetryProvider) {
	logging.Logger().Info().Msg("shutting down telemetry")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := telemetryProvider.Shutdown(shutdownCtx); err != nil {
		logging.Logger().Error().Err(err).Msg("error shutting down telemetry")
	}
}
