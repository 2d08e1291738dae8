// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/authz"
	"github.com/secdojo/doclab/internal/config"
	"github.com/secdojo/doclab/internal/middleware"
)

// Router assembles the HTTP routing tree.
type Router struct {
	handler *Handler
	authMW  *auth.Middleware
	engine  *authz.Engine
	cfg     *config.Config
}

// NewRouter wires the router dependencies.
func NewRouter(handler *Handler, authMW *auth.Middleware, engine *authz.Engine, cfg *config.Config) *Router {
	return &Router{handler: handler, authMW: authMW, engine: engine, cfg: cfg}
}

// Setup builds the routing tree. All /doc endpoints sit behind
// authentication and the endpoint gates; the demo, health, metrics and
// swagger endpoints stay public.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	r.Use(httprate.LimitByIP(
		router.cfg.Security.RateLimitReqs,
		router.cfg.Security.RateLimitWindow,
	))
	r.Use(middleware.PrometheusMetrics)

	// Document and person endpoints. Authentication first, then the
	// endpoint gates; record-level checks happen inside the handlers.
	r.Route("/doc", func(r chi.Router) {
		r.Use(router.authMW.Authenticate)
		r.Use(router.engine.RequireGate)

		r.Get("/example.html", router.handler.HTMLExample)
		r.Get("/example.md", router.handler.MarkdownExample)
		r.Get("/example.adoc", router.handler.AsciiDocExample)
		r.Get("/example.pdf", router.handler.PDFExample)
		r.Get("/example.json", router.handler.JSONExample)

		r.Get("/person/list", router.handler.PersonList)
		r.Get("/person/find/{id}", router.handler.PersonFind)
		r.Post("/person/add", router.handler.PersonAdd)
		r.Put("/person/add", router.handler.PersonAdd)
		r.Delete("/person/delete/{id}", router.handler.PersonDelete)
	})

	// Demo token generator. Public so lab users can mint tokens, with
	// its own per-IP limiter inside the handler.
	r.Get("/demo/{roles}.txt", router.handler.DemoToken)

	// Operational endpoints.
	r.Get("/api/v1/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
	))

	return r
}
