// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"strings"

	"normalai/internal/archetype"
	"normalai/internal/models"
)

// Archetype pair used when the hero image is requested without one.
const (
	defaultPrimaryKey   = "creator"
	defaultSecondaryKey = "architect"
)

// styleMetaphors maps an archetype key to the visual world of its hero.
var styleMetaphors = map[string]string{
	"creator":   "artisan's workshop, creative sanctuary",
	"magician":  "mystical laboratory, enchanted space",
	"sage":      "timeless library, wisdom temple",
	"rebel":     "urban underground, raw energy space",
	"architect": "geometric sanctuary, structured harmony",
}

// Metaphor returns the visual metaphor for an archetype. Unknown archetypes
// get "<key> <suffix>".
func Metaphor(name, suffix string) string {
	key := archetype.Key(name)
	if m, ok := styleMetaphors[key]; ok {
		return m
	}
	return key + " " + suffix
}

func heroImage(in Input) string {
	primaryKey := archetype.Key(in.Primary)
	if primaryKey == "" {
		primaryKey = defaultPrimaryKey
	}
	secondaryKey := archetype.Key(in.Secondary)
	if secondaryKey == "" {
		secondaryKey = defaultSecondaryKey
	}

	colors := strings.Join(in.Palette.Colors(), ", ")
	if colors == "" {
		colors = "harmonious colors"
	}

	var b strings.Builder
	b.WriteString(`MOST IMPORTANT:
- Create a COMPLETELY ORIGINAL hero image
- Do NOT reference or copy any existing designs
- Focus on creating a unique, ownable visual world

CREATIVE DIRECTION:
`)
	fmt.Fprintf(&b, "- Blend the essence of %s with subtle hints of %s\n",
		Metaphor(primaryKey, "space"), Metaphor(secondaryKey, "realm"))
	b.WriteString("- Create an abstract, conceptual environment that feels both familiar and extraordinary\n")
	fmt.Fprintf(&b, "- Use %s as your primary palette\n", colors)
	b.WriteString("- Keep the composition clean and intentional\n\n")

	b.WriteString(compositionGuidance(in.PrimaryRef, in.SecondaryRef, in.PhotoTransformation))

	b.WriteString(`

TECHNICAL REQUIREMENTS:
- Output as a 1792x1024 hero image
- Ensure the design works edge-to-edge
- Create clear focal points that draw the eye
- Leave space for text overlay if needed
- Maintain visual hierarchy and balance

IMPORTANT NOTES:
- The design must be completely original
- Do not use any copyrighted or trademarked elements
- Create something distinctive and ownable
- Focus on quality and professionalism`)
	return b.String()
}

// compositionGuidance lifts layout, material and treatment hints from the
// archetype pair, primary entries first.
func compositionGuidance(primary, secondary *archetype.Reference, photo string) string {
	pick := func(n int, get func(*archetype.Reference) []string) string {
		var all []string
		for _, r := range []*archetype.Reference{primary, secondary} {
			if r != nil {
				all = append(all, get(r)...)
			}
		}
		if len(all) > n {
			all = all[:n]
		}
		return strings.Join(all, ", ")
	}

	layout := pick(2, func(r *archetype.Reference) []string { return r.LayoutPreferences })
	materials := pick(3, func(r *archetype.Reference) []string { return r.MoodboardTags })
	treatment := pick(1, func(r *archetype.Reference) []string { return r.PhotoTransforms })

	var b strings.Builder
	b.WriteString("COMPOSITION GUIDANCE:\n")
	if layout != "" {
		fmt.Fprintf(&b, "- Layout preference: %s\n", layout)
	}
	if materials != "" {
		fmt.Fprintf(&b, "- Materials to feature: %s\n", materials)
	}
	if treatment != "" {
		fmt.Fprintf(&b, "- Visual treatment: %s\n", treatment)
	}
	if photo = strings.TrimSpace(photo); photo != "" {
		fmt.Fprintf(&b, "- Photo transformation: %s\n", photo)
	}
	b.WriteString("- Lighting should support structural logic, not mood\n")
	b.WriteString("- Ensure hierarchy through spatial tension and contrast")
	return b.String()
}

// LogoColors returns the background and icon colors for a logo: the
// palette primary fills the canvas and the icon is white, unless the
// background is itself white-ish, in which case the accent is used.
func LogoColors(p models.ColorPalette) (bg, icon string) {
	bg = p.Primary
	if bg == "" {
		bg = "#000000"
	}
	if strings.HasPrefix(strings.ToLower(bg), "#fff") {
		icon = p.Accent
		if icon == "" {
			icon = "#000000"
		}
		return bg, icon
	}
	return bg, "#FFFFFF"
}

func logoImage(in Input) string {
	bg, icon := LogoColors(in.Palette)

	personality := strings.TrimSpace(in.LogoDirection)
	if personality == "" {
		personality = "clear, confident and distinctive"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Design a single brand icon for %q.\n\n", in.BrandName)
	fmt.Fprintf(&b, `MOST IMPORTANT - BACKGROUND:
- The entire canvas MUST be filled with a solid %s color
- NO textures, NO gradients, NO patterns
- Think of it like a solid piece of colored paper

STYLE:
- Flat, modern, minimal, and iconic
- Create something original that captures the essence and feeling
- Focus on the brand's core personality: %s
`, bg, personality)
	if in.Primary != "" && in.Secondary != "" {
		fmt.Fprintf(&b, "- Let it feel like %s with a touch of %s\n", in.Primary, in.Secondary)
	}
	fmt.Fprintf(&b, `
COLOR:
- Background: solid %s, filling the full square canvas
- Icon: solid %s

COMPOSITION:
- Single icon centered in frame
- Icon should be bold and clear at small sizes
- Generous padding around icon
- Clean, geometric shapes preferred
- No text, no letters, just a symbol

TECHNICAL:
- Output as a 1024x1024 square
- Flat 2D design only
- No 3D effects
- No shadows
- No gradients
- No textures
- No patterns
- Just two solid colors: background and icon

IMPORTANT NOTES:
- The design must be completely original
- Do not use any copyrighted or trademarked elements
- Keep it simple and iconic
- The icon should work at any size`, bg, icon)
	return b.String()
}

// mockupScenes holds the per-type scene; %[1]s is the brand name, %[2]s
// the brand type, %[3]s the primary color and %[4]s the accent color.
var mockupScenes = map[models.MockupType]string{
	models.MockupBillboard: `Create a photorealistic mockup of a large outdoor billboard for "%[1]s".
- Show the billboard in a contemporary urban setting at dusk/golden hour
- Natural city environment with modern architecture in background
- Subtle ambient lighting and atmospheric effects
- Logo should be elegantly integrated, not just pasted on
- Use %[3]s as the dominant architectural element
- Focus on creating a premium, high-end feel
- Make it feel like a real location, not a template`,

	models.MockupStorefront: `Create a photorealistic mockup of a retail/business entrance for "%[1]s".
- Design a modern, minimalist storefront that fits the brand's aesthetic
- Integrate the logo naturally into the facade architecture
- Use %[3]s and %[4]s in the structural elements
- Add depth with glass reflections and subtle environmental lighting
- Include organic elements like blurred pedestrians or street activity
- Make it feel like a premium location in a design-forward neighborhood
- Focus on architectural details that complement the brand style`,

	models.MockupProduct: `Create a photorealistic product mockup for "%[1]s" that makes sense for a %[2]s.
- Design an elegant, minimal product presentation
- Use materials and finishes that reflect the brand's premium positioning
- Integrate the logo subtly and naturally into the product design
- Create soft, natural lighting with delicate shadows
- Add minimal styling elements that enhance but don't distract
- Make it feel like a professional product photo shoot
- Focus on texture and material quality`,

	models.MockupStationery: `Create a photorealistic mockup of premium business stationery for "%[1]s".
- Arrange business cards, letterhead, and materials in an editorial style
- Use %[3]s and %[4]s thoughtfully in the materials
- Create a sophisticated flat-lay composition with natural shadows
- Add subtle texture and depth through paper materials
- Make it feel like a high-end brand photography session
- Focus on premium print finishes and materials
- Include small styling elements that add life without overwhelming`,

	models.MockupEnvironment: `Create a photorealistic environmental mockup showing "%[1]s" in context.
- Design a space that naturally fits a %[2]s brand
- Integrate brand colors (%[3]s, %[4]s) architecturally
- Create a sophisticated atmosphere with thoughtful lighting
- Add life through subtle environmental elements
- Make it feel like a real, lived-in premium space
- Focus on architectural details and material quality
- Ensure the brand presence feels organic, not forced`,
}

func mockup(in Input, scene string) string {
	brandType := strings.TrimSpace(in.BrandType)
	if brandType == "" {
		brandType = "modern brand"
	}
	primary, accent := in.Palette.Primary, in.Palette.Accent
	if primary == "" {
		primary = "the brand's primary color"
	}
	if accent == "" {
		accent = "a restrained accent color"
	}

	body := fmt.Sprintf(scene, in.BrandName, brandType, primary, accent)
	return `IMPORTANT - Create a photorealistic mockup:
- This should look like a professional photograph
- Focus on lighting, shadows, and reflections
- Use high-quality materials and textures
- Create a believable environment
- Make it feel premium and sophisticated
- Avoid template-like or generic presentations
- Ensure natural integration of brand elements
- Do not use any copyrighted or trademarked elements

` + body + `

Remember: This must be PHOTOREALISTIC - like a high-end commercial photograph.`
}
