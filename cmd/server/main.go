// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/secdojo/doclab/docs" // swagger spec registration
	"github.com/secdojo/doclab/internal/api"
	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/authz"
	"github.com/secdojo/doclab/internal/config"
	"github.com/secdojo/doclab/internal/logging"
	"github.com/secdojo/doclab/internal/render"
	"github.com/secdojo/doclab/internal/server"
	"github.com/secdojo/doclab/internal/store"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Int("port", cfg.Server.Port).
		Bool("demo_enabled", cfg.Demo.Enabled).
		Msg("Starting doclab")

	st := store.New()
	if err := st.Seed(); err != nil {
		logging.Fatal().Err(err).Msg("Failed to seed person store")
	}

	enforcer, err := authz.NewEnforcer()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load access policy")
	}
	engine := authz.NewEngine(enforcer, st)

	renderer, err := render.NewEngine()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse document templates")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token manager")
	}

	handler := api.NewHandler(engine, renderer, jwtManager, cfg.Demo, version)
	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), engine, cfg)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sup := server.NewSupervisor(server.SupervisorConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	sup.Add(server.NewHTTPService(httpServer, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", httpServer.Addr).Msg("HTTP server added to supervisor")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := sup.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	logging.Info().Msg("Stopped gracefully")
}
