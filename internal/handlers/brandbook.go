// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"io"
	"net/http"

	"normalai/internal/apperr"
	"normalai/internal/brandbook"
	"normalai/internal/models"
)

var errUnknownFormat = errors.New("format must be markdown or html")

// GetBrandBook handles GET /api/brains/{id}/brandbook. The book is Markdown
// by default; ?format=html renders it through goldmark.
func (a *API) GetBrandBook(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	switch format {
	case "", "markdown", "md", "html":
	default:
		a.writeError(w, r, apperr.InvalidInput("format", errUnknownFormat))
		return
	}

	brain, err := a.svc.Brain(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	// A brain whose brand row is gone still gets a book, titled by default.
	var owner *models.Brand
	if b, err := a.svc.Brand(r.Context(), brain.BrandID); err == nil {
		owner = b
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		a.writeError(w, r, err)
		return
	}

	if format == "html" {
		out, err := brandbook.HTML(owner, brain)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, out)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, brandbook.Markdown(owner, brain))
}
