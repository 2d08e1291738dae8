// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package api implements the HTTP surface of Doclab: document
// rendering, person management, the demo token generator and the
// operational endpoints, routed with Chi.
package api

import (
	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/authz"
	"github.com/secdojo/doclab/internal/config"
	"github.com/secdojo/doclab/internal/render"
)

// Handler carries the dependencies of all endpoint handlers.
type Handler struct {
	engine   *authz.Engine
	renderer *render.Engine
	jwt      *auth.JWTManager
	demoCfg  config.DemoConfig
	limiter  *demoLimiter

	version string
}

// NewHandler wires the handler dependencies.
func NewHandler(engine *authz.Engine, renderer *render.Engine, jwt *auth.JWTManager, demoCfg config.DemoConfig, version string) *Handler {
	return &Handler{
		engine:   engine,
		renderer: renderer,
		jwt:      jwt,
		demoCfg:  demoCfg,
		limiter:  newDemoLimiter(demoCfg.TokensPerSec, demoCfg.TokensBurst),
		version:  version,
	}
}
