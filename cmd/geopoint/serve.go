package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/woozymasta/geopoint/internal/config"
	"github.com/woozymasta/geopoint/internal/server"

	"github.com/rs/zerolog/log"
)

// ServeCommand starts the HTTP API.
type ServeCommand struct {
	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file with named points"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
}

// Execute implements flags.Commander.
func (c *ServeCommand) Execute(_ []string) error {
	cfg := &config.Config{}
	if c.ConfigFile != "" {
		loaded, err := config.Load(c.ConfigFile)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded
	}

	srvCtx, err := server.NewServerContext(cfg)
	if err != nil {
		return err
	}

	listenAddr := fmt.Sprintf("%s:%d", c.Addr, c.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Int("points_loaded", len(cfg.Points)).
		Msg("Web server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("Server failed")
		return err
	}

	return nil
}
