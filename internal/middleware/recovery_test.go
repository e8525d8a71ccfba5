// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoverer(t *testing.T) {
	t.Run("panic becomes JSON 500", func(t *testing.T) {
		captureLogs(t)
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil brain")
		})

		rr := httptest.NewRecorder()
		Recoverer(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/generate-logo", nil))

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rr.Code)
		}
		if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type: got %q", ct)
		}
		var body map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Internal server error" {
			t.Errorf("error: got %q", body["error"])
		}
		if len(body) != 1 {
			t.Errorf("body should only carry the error field, got %v", body)
		}
	})

	t.Run("logs the panic with path and stack", func(t *testing.T) {
		logs := captureLogs(t)
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(42)
		})

		Recoverer(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/brains/abc", nil))

		rec := lastRecord(t, logs)
		if rec["msg"] != "panic recovered" || rec["level"] != "ERROR" {
			t.Errorf("record: got msg=%v level=%v", rec["msg"], rec["level"])
		}
		if rec["path"] != "/api/brains/abc" {
			t.Errorf("path: got %v", rec["path"])
		}
		if stack, _ := rec["stack"].(string); !strings.Contains(stack, "goroutine") {
			t.Error("stack trace missing from log record")
		}
	})

	t.Run("abort handler panic is re-raised", func(t *testing.T) {
		captureLogs(t)
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		defer func() {
			if rec := recover(); rec != http.ErrAbortHandler {
				t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
			}
		}()
		Recoverer(inner).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/brains/abc/brandbook", nil))
		t.Error("ServeHTTP should have panicked")
	})

	t.Run("passes through without panic", func(t *testing.T) {
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Brain-Id", "abc")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		})

		rr := httptest.NewRecorder()
		Recoverer(inner).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/brains/abc", nil))

		if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
			t.Errorf("got %d %q, want 200 ok", rr.Code, rr.Body.String())
		}
		if got := rr.Header().Get("X-Brain-Id"); got != "abc" {
			t.Errorf("X-Brain-Id: got %q", got)
		}
	})
}
