// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all JSON endpoints.
// It provides consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"id": "0e3a...", "creationDate": "2026-01-15T12:00:00Z"},
//	  "metadata": {"timestamp": "2026-01-15T12:00:00Z"}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Invalid person payload",
//	    "details": {"field": "firstName"}
//	  },
//	  "metadata": {"timestamp": "2026-01-15T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - RequestID: Correlation ID echoed from the request middleware
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints.
//
// Common error codes:
//   - AUTH_REQUIRED: Missing or invalid credentials (HTTP 401)
//   - FORBIDDEN: Caller may not access the resource; deliberately
//     indistinguishable from the resource not existing (HTTP 403)
//   - VALIDATION_ERROR: Invalid input parameters (HTTP 400)
//   - RENDER_ERROR: Document rendering failure (HTTP 500)
//   - STORE_ERROR: Person store failure (HTTP 500)
//   - RATE_LIMIT_EXCEEDED: Too many requests (HTTP 429)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
