// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperr defines the error kinds surfaced by the brand pipeline and
// maps each one to an HTTP status and a public message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	KindMissingInput Kind = "missing_input"
	KindInvalidInput Kind = "invalid_input"
	KindUpstream     Kind = "upstream"
	KindParse        Kind = "parse"
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindPersistence  Kind = "persistence"
	KindMatch        Kind = "match"
	KindFlagged      Kind = "flagged"
)

// Error is a classified failure. Message is safe to show to callers;
// Err carries the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error

	// Raw holds the unparsed completion text for parse failures.
	Raw string
	// Missing lists absent fields (missing input or required JSON keys).
	Missing []string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if len(e.Missing) > 0 {
		msg += " (" + strings.Join(e.Missing, ", ") + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Details returns the diagnostic text sent alongside the public message.
func (e *Error) Details() string {
	switch {
	case len(e.Missing) > 0:
		return "missing: " + strings.Join(e.Missing, ", ")
	case e.Err != nil:
		return e.Err.Error()
	default:
		return ""
	}
}

// MissingInput reports absent required request fields.
func MissingInput(fields ...string) *Error {
	return &Error{Kind: KindMissingInput, Message: "Missing required fields", Missing: fields}
}

// InvalidInput reports request fields that are present but malformed.
func InvalidInput(field string, err error) *Error {
	return &Error{Kind: KindInvalidInput, Message: "Invalid request", Err: fmt.Errorf("%s: %w", field, err)}
}

// Upstream reports a failed or empty completion/image API call.
func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Err: err}
}

// Parse reports completion text that is not valid JSON.
func Parse(raw string, err error) *Error {
	return &Error{Kind: KindParse, Message: "Failed to parse brand analysis", Err: err, Raw: raw}
}

// Validation reports parsed JSON that lacks required keys.
func Validation(missing []string) *Error {
	return &Error{Kind: KindValidation, Message: "Brand analysis is missing required fields", Missing: missing}
}

// NotFound reports a referenced record that does not exist.
func NotFound(what, id string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", what), Err: fmt.Errorf("%s %s does not exist", strings.ToLower(what), id)}
}

// Persistence reports a datastore or object storage write failure.
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// Match reports an archetype name that is not in the loaded catalog.
func Match(name string) *Error {
	return &Error{Kind: KindMatch, Message: "Archetype match failed", Err: fmt.Errorf("archetype %q is not in the catalog", name)}
}

// NoCatalog reports a match attempted without a loaded archetype catalog.
func NoCatalog() *Error {
	return &Error{Kind: KindMatch, Message: "Archetype match failed", Err: errors.New("archetype catalog is not loaded")}
}

// Flagged reports user text rejected by content moderation.
func Flagged(field string, categories []string) *Error {
	return &Error{Kind: KindFlagged, Message: "Input was flagged by content moderation", Err: fmt.Errorf("%s flagged for: %s", field, strings.Join(categories, ", "))}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// Status maps an error to the HTTP status returned to clients.
func Status(err error) int {
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindMissingInput, KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindFlagged:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the caller-facing message for err.
func PublicMessage(err error) string {
	if e, ok := As(err); ok && e.Message != "" {
		return e.Message
	}
	return "Internal server error"
}
