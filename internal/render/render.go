// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

// Package render turns a person listing into the document formats the
// lab serves: HTML, Markdown, AsciiDoc, JSON and PDF. Each document is
// built from the records visible to the caller, so two roles fetching
// the same URL can receive different content.
package render

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secdojo/doclab/internal/models"
)

// Format identifies a document output format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatAsciiDoc Format = "adoc"
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
)

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatAsciiDoc:
		return "text/asciidoc; charset=utf-8"
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Document is the data rendered into every format.
type Document struct {
	Title       string
	GeneratedAt time.Time
	People      []models.PersonResponse
}

//go:embed templates/*.tmpl
var templateFS embed.FS

// Engine renders documents. Templates are parsed once at construction.
type Engine struct {
	html *htmltemplate.Template
	text *template.Template
}

// NewEngine parses the embedded templates.
func NewEngine() (*Engine, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/example.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}
	text, err := template.ParseFS(templateFS, "templates/example.md.tmpl", "templates/example.adoc.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Engine{html: html, text: text}, nil
}

// Render produces the document in the requested format.
func (e *Engine) Render(format Format, doc Document) ([]byte, error) {
	switch format {
	case FormatHTML:
		return e.execute(func(buf *bytes.Buffer) error {
			return e.html.ExecuteTemplate(buf, "example.html.tmpl", doc)
		})
	case FormatMarkdown:
		return e.execute(func(buf *bytes.Buffer) error {
			return e.text.ExecuteTemplate(buf, "example.md.tmpl", doc)
		})
	case FormatAsciiDoc:
		return e.execute(func(buf *bytes.Buffer) error {
			return e.text.ExecuteTemplate(buf, "example.adoc.tmpl", doc)
		})
	case FormatJSON:
		return e.renderJSON(doc)
	case FormatPDF:
		return renderPDF(doc)
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

func (e *Engine) execute(fn func(*bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return nil, fmt.Errorf("template execution failed: %w", err)
	}
	return buf.Bytes(), nil
}

// jsonDocument is the wire shape of the JSON format.
type jsonDocument struct {
	Title       string                  `json:"title"`
	GeneratedAt time.Time               `json:"generatedAt"`
	People      []models.PersonResponse `json:"people"`
}

func (e *Engine) renderJSON(doc Document) ([]byte, error) {
	out, err := json.MarshalIndent(jsonDocument(doc), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json rendering failed: %w", err)
	}
	return out, nil
}
