// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"normalai/internal/apperr"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError translates err into a status and a public message. Details
// are only exposed outside production.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.Status(err)
	body := errorBody{Error: apperr.PublicMessage(err)}
	if !a.production {
		if e, ok := apperr.As(err); ok {
			body.Details = e.Details()
		} else {
			body.Details = err.Error()
		}
	}

	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	} else {
		a.logger.Warn("request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

// decode reads a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.InvalidInput("body", errors.New("empty request body"))
		}
		return apperr.InvalidInput("body", err)
	}
	return nil
}

// parseID parses a UUID request field. An empty value yields uuid.Nil so
// the service can report it as missing.
func parseID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.InvalidInput(field, fmt.Errorf("%q is not a valid id", raw))
	}
	return id, nil
}

// NotFound answers unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "Method not allowed"})
}
