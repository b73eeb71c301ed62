package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/stubio/stubio-web/internal/config"
	"github.com/stubio/stubio-web/provider"
	"github.com/stubio/stubio-web/provider/hosted"
	"github.com/stubio/stubio-web/provider/local"
	"github.com/stubio/stubio-web/server"
	"github.com/stubio/stubio-web/workspace"
	"github.com/stubio/stubio-web/workspace/postgres"
	"github.com/stubio/stubio-web/workspace/storefake"
)

// Demo credentials seeded into the local provider in DEV only.
const (
	demoEmail    = "client@stubio.dk"
	demoPassword = "demo-password"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatal().Err(err).Msg("Error running server")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load()

	c := config.New()
	displayAppname(c.GetAppName())

	authProvider, err := buildProvider(c)
	if err != nil {
		return fmt.Errorf("buildProvider: %w", err)
	}

	store, err := buildStore(c)
	if err != nil {
		return fmt.Errorf("buildStore: %w", err)
	}

	srv := &http.Server{Addr: c.GetPort(), Handler: server.New(c, authProvider, store)}
	go listenAndServe(srv)
	waitForStopSignal()
	returnError = shutdown(srv)
	return returnError
}

// buildProvider wires the hosted auth backend when configured. In DEV
// it falls back to an in-memory provider seeded with a demo account;
// anywhere else an unconfigured backend leaves the provider nil, which
// keeps the marketing pages up while login reports server_error.
func buildProvider(c config.Config) (provider.Provider, error) {
	if c.ProviderConfigured() {
		log.Info().Str("url", c.GetProviderURL()).Msg("Using hosted auth provider")
		return hosted.New(c.GetProviderURL(), c.GetProviderKey())
	}

	if c.GetEnv() != "DEV" {
		log.Warn().Msg("Auth provider unconfigured, login disabled")
		return nil, nil
	}

	p, err := local.New(c.GetLocalAuthSecret())
	if err != nil {
		return nil, err
	}
	if _, err := p.AddUser(demoEmail, demoPassword); err != nil {
		return nil, err
	}
	log.Info().Str("email", demoEmail).Msg("Using local auth provider with demo account")
	return p, nil
}

func buildStore(c config.Config) (workspace.Store, error) {
	if url := c.GetDatabaseURL(); url != "" {
		log.Info().Msg("Using postgres workspace store")
		return postgres.New(context.Background(), url)
	}

	log.Warn().Msg("DATABASE_URL unset, using in-memory workspace store")
	return storefake.New(), nil
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
