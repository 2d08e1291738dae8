// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package api

import (
	"net/http"
	"time"

	"github.com/secdojo/doclab/internal/auth"
	"github.com/secdojo/doclab/internal/render"
)

// DocumentTitle is the shared title of every rendered example document.
const DocumentTitle = "People Report"

// docExample renders the person listing visible to the caller in the
// given format. Two callers with different roles receive different
// documents from the same URL.
func (h *Handler) docExample(format render.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller := auth.IdentityFromContext(r.Context())

		people := h.engine.VisiblePeople(caller)
		doc := render.Document{
			Title:       DocumentTitle,
			GeneratedAt: time.Now().UTC(),
		}
		for _, p := range people {
			doc.People = append(doc.People, p.ToResponse())
		}

		out, err := h.renderer.Render(format, doc)
		if err != nil {
			respondError(w, r, http.StatusInternalServerError,
				"RENDER_ERROR", "document rendering failed", nil, err)
			return
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out); err != nil {
			return
		}
	}
}

// HTMLExample godoc
//
//	@Summary		HTML version of the document (roles: admin, user)
//	@Description	Renders the people listing visible to the caller as HTML.
//	@Tags			document
//	@Produce		html
//	@Success		200	{string}	string	"The HTML document content"
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Failure		500	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/example.html [get]
func (h *Handler) HTMLExample(w http.ResponseWriter, r *http.Request) {
	h.docExample(render.FormatHTML)(w, r)
}

// MarkdownExample godoc
//
//	@Summary		Markdown version of the document (roles: admin, user, guest)
//	@Description	Renders the people listing visible to the caller as Markdown.
//	@Tags			document
//	@Produce		plain
//	@Success		200	{string}	string	"The Markdown document content"
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Failure		500	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/example.md [get]
func (h *Handler) MarkdownExample(w http.ResponseWriter, r *http.Request) {
	h.docExample(render.FormatMarkdown)(w, r)
}

// AsciiDocExample godoc
//
//	@Summary		AsciiDoc version of the document (roles: admin)
//	@Description	Renders the people listing visible to the caller as AsciiDoc.
//	@Tags			document
//	@Produce		plain
//	@Success		200	{string}	string	"The AsciiDoc document content"
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Failure		500	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/example.adoc [get]
func (h *Handler) AsciiDocExample(w http.ResponseWriter, r *http.Request) {
	h.docExample(render.FormatAsciiDoc)(w, r)
}

// PDFExample godoc
//
//	@Summary		PDF version of the document (roles: admin)
//	@Description	Renders the people listing visible to the caller as PDF.
//	@Tags			document
//	@Produce		application/pdf
//	@Success		200	{string}	binary	"The PDF document content"
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Failure		500	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/example.pdf [get]
func (h *Handler) PDFExample(w http.ResponseWriter, r *http.Request) {
	h.docExample(render.FormatPDF)(w, r)
}

// JSONExample godoc
//
//	@Summary		JSON version of the document (roles: admin, user)
//	@Description	Renders the people listing visible to the caller as JSON.
//	@Tags			document
//	@Produce		json
//	@Success		200	{string}	string	"The JSON document content"
//	@Failure		401	{object}	models.APIResponse
//	@Failure		403	{object}	models.APIResponse
//	@Failure		500	{object}	models.APIResponse
//	@Security		BearerAuth
//	@Router			/doc/example.json [get]
func (h *Handler) JSONExample(w http.ResponseWriter, r *http.Request) {
	h.docExample(render.FormatJSON)(w, r)
}
