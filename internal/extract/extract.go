// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extract pulls a JSON object out of free-form completion text.
// Models frequently wrap their answer in markdown fences or add a sentence
// of prose around it; Clean removes both before parsing. Only syntax is
// checked here, never the meaning of individual values.
package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"normalai/internal/apperr"
)

// Clean strips markdown code fences and any text outside the outermost
// JSON object. Text without a '{' is returned trimmed and unchanged.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)

	// Remove an opening fence line: ```json, ```JSON or a bare ```.
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if nl := strings.IndexByte(s, '\n'); nl != -1 && !strings.ContainsAny(s[:nl], "{[") {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(strings.TrimPrefix(s, "json"), "JSON")
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// JSON cleans raw and parses it as a JSON object. Failures are returned
// as a parse error that keeps the original text for diagnostics.
func JSON(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(Clean(raw)), &obj); err != nil {
		return nil, apperr.Parse(raw, err)
	}
	if obj == nil {
		return nil, apperr.Parse(raw, errNotObject)
	}
	return obj, nil
}

// Strict parses raw like JSON and then checks that every required key is
// present and non-null. Keys may be dotted paths ("color_palette.accent")
// to reach into nested objects.
func Strict(raw string, required ...string) (map[string]any, error) {
	obj, err := JSON(raw)
	if err != nil {
		return nil, err
	}
	if missing := MissingKeys(obj, required...); len(missing) > 0 {
		return nil, apperr.Validation(missing)
	}
	return obj, nil
}

// Into runs Strict and decodes the cleaned object into v.
func Into(raw string, v any, required ...string) error {
	if _, err := Strict(raw, required...); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(Clean(raw)), v); err != nil {
		return apperr.Parse(raw, err)
	}
	return nil
}

// MissingKeys returns the keys from required that are absent or null in
// obj, preserving the order in which they were requested.
func MissingKeys(obj map[string]any, required ...string) []string {
	var missing []string
	for _, key := range required {
		if !hasPath(obj, key) {
			missing = append(missing, key)
		}
	}
	return missing
}

func hasPath(obj map[string]any, path string) bool {
	var cur any = obj
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		v, ok := m[part]
		if !ok || v == nil {
			return false
		}
		cur = v
	}
	return true
}

var errNotObject = errors.New("completion text is not a JSON object")
