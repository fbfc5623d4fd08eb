package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gmdesk/console/internal/config"
	"github.com/gmdesk/console/internal/mockapi"
	"github.com/gmdesk/console/internal/task"
)

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})
	log.Info().Msg("starting up...")

	// Load the application configuration
	log.Info().Msg("loading configuration...")
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	// Create the stub API service and seed it with demo campaign data
	service, err := mockapi.New(mockapi.Config{
		ListenAddress: cfg.MockAPIListenAddress,
		AllowedOrigin: cfg.MockAPIAllowedOrigin,
		SessionTTL:    cfg.MockAPISessionTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the stub API service")
	}
	if cfg.MockAPISeed {
		if err := service.Seed(); err != nil {
			log.Fatal().Err(err).Msg("could not seed the demo campaign")
		}
	}

	// Schedule a task that sweeps out expired login sessions
	sessionSweepTask := task.NewRepeating(func() {
		n, err := service.Storage().TerminateExpiredSessions()
		if err != nil {
			log.Error().Err(err).Msg("could not terminate expired sessions")
		} else if n > 0 {
			log.Info().Int("amount", n).Msg("terminated expired sessions")
		}
	}, time.Minute)
	sessionSweepTask.Start()
	defer sessionSweepTask.Stop(false)

	// Start up the stub API
	log.Info().Str("listen_address", cfg.MockAPIListenAddress).Msg("starting up the stub API...")
	errs := make(chan error, 1)
	service.Startup(errs)
	go func() {
		err := <-errs
		log.Fatal().Err(err).Msg("the stub API raised an unexpected error")
	}()
	defer func() {
		log.Info().Msg("shutting down the stub API...")
		service.Shutdown()
	}()

	log.Info().Msg("done!")
	defer log.Info().Msg("shutting down...")

	// Wait for the application to be terminated
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)
	<-shutdown
}
