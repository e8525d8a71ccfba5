// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Direction is a creative direction (logo, layout, photo treatment) that
// the model returns either as an object such as
// {"style": "...", "elements": [...]} or as a plain sentence. The JSON is
// kept verbatim so both shapes round-trip through storage.
type Direction json.RawMessage

// TextDirection wraps a free-text direction.
func TextDirection(s string) Direction {
	b, _ := json.Marshal(s)
	return Direction(b)
}

// MarshalJSON emits the stored JSON, or null when empty.
func (d Direction) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return []byte(d), nil
}

// UnmarshalJSON stores a copy of the raw JSON value.
func (d *Direction) UnmarshalJSON(b []byte) error {
	if d == nil {
		return fmt.Errorf("models: UnmarshalJSON on nil Direction")
	}
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*d = nil
		return nil
	}
	*d = append((*d)[:0], b...)
	return nil
}

// IsZero reports whether no direction was recorded.
func (d Direction) IsZero() bool {
	return len(d) == 0 || string(d) == "null"
}

// Text renders the direction as a single line for prompts. Objects become
// "key: value; key: a, b" with keys in sorted order.
func (d Direction) Text() string {
	if d.IsZero() {
		return ""
	}

	var s string
	if err := json.Unmarshal(d, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]any
	if err := json.Unmarshal(d, &obj); err != nil {
		return strings.TrimSpace(string(d))
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := flatten(obj[k]); v != "" {
			parts = append(parts, k+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}

func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			if s := flatten(item); s != "" {
				items = append(items, s)
			}
		}
		return strings.Join(items, ", ")
	default:
		return fmt.Sprint(t)
	}
}
