// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brandbook renders a brand brain as a shareable brand book, first
// as Markdown and then as HTML through goldmark. Raw HTML inside generated
// text is escaped, never passed through.
package brandbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"normalai/internal/models"
)

// md is the configured goldmark instance, reused across calls.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,         // palette table
		extension.Typographer, // smart quotes in the story
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
			highlighting.WithFormatOptions(),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// Markdown renders the brand book. brand may be nil, in which case the
// default brand name is used as the title.
func Markdown(brand *models.Brand, brain *models.BrandBrain) string {
	name := models.DefaultBrandName
	if brand != nil && brand.Name != "" {
		name = brand.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	if brain.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", oneLine(brain.Tagline))
	}
	if brain.HeroImageURL != nil && *brain.HeroImageURL != "" {
		fmt.Fprintf(&b, "![%s hero](%s)\n\n", name, *brain.HeroImageURL)
	}

	if brain.BrandStory != "" {
		b.WriteString("## Story\n\n")
		b.WriteString(strings.TrimSpace(brain.BrandStory))
		b.WriteString("\n\n")
	}

	b.WriteString("## Personality\n\n")
	fmt.Fprintf(&b, "- **Primary archetype:** %s\n", orDash(brain.PrimaryArchetype))
	fmt.Fprintf(&b, "- **Secondary archetype:** %s\n", orDash(brain.SecondaryArchetype))
	fmt.Fprintf(&b, "- **Tone:** %s\n", orDash(oneLine(brain.Tone)))
	if len(brain.VoiceTraits) > 0 {
		fmt.Fprintf(&b, "- **Voice:** %s\n", strings.Join(brain.VoiceTraits, ", "))
	}
	b.WriteString("\n")

	if colors := paletteRows(brain.ColorPalette); len(colors) > 0 {
		b.WriteString("## Color palette\n\n")
		b.WriteString("| Role | Color |\n|---|---|\n")
		for _, row := range colors {
			fmt.Fprintf(&b, "| %s | `%s` |\n", row[0], cell(row[1]))
		}
		b.WriteString("\n")
	}

	if f := brain.FontSuggestions; f.Headings != "" || f.Body != "" {
		b.WriteString("## Typography\n\n")
		fmt.Fprintf(&b, "- **Headings:** %s\n", orDash(f.Headings))
		fmt.Fprintf(&b, "- **Body:** %s\n\n", orDash(f.Body))
	}

	writeDirection(&b, "Logo direction", brain.LogoDirection)
	writeDirection(&b, "Layout style", brain.LayoutStyle)
	writeDirection(&b, "Photo transformation", brain.PhotoTransform)

	if brain.LogoURL != nil && *brain.LogoURL != "" {
		b.WriteString("## Logo\n\n")
		fmt.Fprintf(&b, "![%s logo](%s)\n\n", name, *brain.LogoURL)
	}
	if len(brain.MockupURLs) > 0 {
		b.WriteString("## Mockups\n\n")
		for i, u := range brain.MockupURLs {
			fmt.Fprintf(&b, "![Mockup %d](%s)\n\n", i+1, u)
		}
	}
	return b.String()
}

// HTML renders the brand book as an HTML fragment.
func HTML(brand *models.Brand, brain *models.BrandBrain) (string, error) {
	return ToHTML(Markdown(brand, brain))
}

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("brandbook: %w", err)
	}
	return buf.String(), nil
}

// writeDirection emits a section for a direction. Structured directions
// keep their JSON as a fenced block after the flattened summary.
func writeDirection(b *strings.Builder, title string, d models.Direction) {
	if d.IsZero() {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, d.Text())

	trimmed := bytes.TrimSpace(d)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, trimmed, "", "  "); err != nil {
		return
	}
	fmt.Fprintf(b, "```json\n%s\n```\n\n", pretty.String())
}

func paletteRows(p models.ColorPalette) [][2]string {
	var rows [][2]string
	for _, r := range [][2]string{
		{"Primary", p.Primary},
		{"Secondary", p.Secondary},
		{"Accent", p.Accent},
		{"Neutral", p.Neutral},
	} {
		if r[1] != "" {
			rows = append(rows, r)
		}
	}
	return rows
}

func cell(s string) string {
	return strings.ReplaceAll(oneLine(s), "|", `\|`)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
