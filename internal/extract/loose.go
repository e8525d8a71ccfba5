// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// List decodes a JSON array of strings, or a single comma-separated string
// such as "gentle, wise, clear". Blank entries are dropped.
type List []string

func (l *List) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = splitList(s)
		return nil
	}

	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("expected a list or a comma-separated string, got %s", b)
	}
	out := make(List, 0, len(items))
	for _, item := range items {
		if t := scalarText(item); t != "" {
			out = append(out, t)
		}
	}
	*l = out
	return nil
}

// Text decodes a JSON string. Numbers and booleans are formatted, and an
// array of scalars is joined with ", ".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			if s := scalarText(item); s != "" {
				parts = append(parts, s)
			}
		}
		*t = Text(strings.Join(parts, ", "))
	case map[string]any:
		return fmt.Errorf("expected text, got an object")
	default:
		*t = Text(scalarText(x))
	}
	return nil
}

func splitList(s string) List {
	var out List
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func scalarText(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case float64, bool:
		return fmt.Sprint(x)
	default:
		return ""
	}
}
