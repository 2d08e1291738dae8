// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package main provides the Doclab HTTP server
//
// Doclab is a deliberately small REST service for practicing access
// control review: every route is guarded by role-based policy, and the
// server renders the same document differently depending on who asks.
//
// @title Doclab API
// @version 1.0
// @description Role-based document and person service for access control training
// @description
// @description ## Roles
// @description
// @description Three roles are recognized, ordered admin > user > guest.
// @description A caller holding a stronger role may do everything a weaker
// @description role may do. Records carry a minimum role; callers below it
// @description cannot see the record exists.
// @description
// @description ## Authentication
// @description
// @description All `/doc` endpoints require a Bearer JWT. Tokens carry the
// @description subject in the `upn` claim and roles in the `groups` claim.
// @description Demo tokens can be minted from `/demo/{roles}.txt` when the
// @description demo endpoint is enabled.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-09-01T12:34:56Z"
// @description   }
// @description }
// @description ```
// @description
// @description Denied access and absent records share a single `FORBIDDEN`
// @description response so record identifiers cannot be enumerated.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/secdojo/doclab/issues
//
// @license.name Apache-2.0
// @license.url https://www.apache.org/licenses/LICENSE-2.0
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT sent as "Bearer {token}". Mint one via /demo/{roles}.txt.
//
// @tag.name Documents
// @tag.description Rendered document endpoints. Content reflects only the records the caller may see.
//
// @tag.name People
// @tag.description Person record CRUD, gated per role with record-level visibility.
//
// @tag.name Demo
// @tag.description Demo token minting for trying out the lab.
//
// @tag.name Core
// @tag.description Health and operational endpoints.
package main
