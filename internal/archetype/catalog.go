// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package archetype loads the read-only archetype reference catalog used
// to steer prompt construction. Entries are keyed by lowercased name with
// any leading "the " removed, so "The Creator" and "creator" find the same
// record. The catalog ships with built-in entries and can be extended from
// a directory of JSON or YAML files.
package archetype

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data
var builtinFS embed.FS

// ColorBias is one suggested color with a human label.
type ColorBias struct {
	Hex   string `json:"hex" yaml:"hex"`
	Label string `json:"label" yaml:"label"`
}

// Reference is a static description of one archetype's visual and verbal
// tendencies.
type Reference struct {
	Name              string      `json:"name" yaml:"name"`
	ToneFlavor        string      `json:"tone_flavor" yaml:"tone_flavor"`
	VoiceTraits       []string    `json:"voice_traits" yaml:"voice_traits"`
	ColorBias         []ColorBias `json:"color_bias" yaml:"color_bias"`
	FontTendencies    []string    `json:"font_tendencies" yaml:"font_tendencies"`
	LayoutPreferences []string    `json:"layout_preferences" yaml:"layout_preferences"`
	MoodboardTags     []string    `json:"moodboard_tags" yaml:"moodboard_tags"`
	PhotoTransforms   []string    `json:"photo_transforms" yaml:"photo_transforms"`
	VisualReferences  []string    `json:"visual_references" yaml:"visual_references"`
}

// Catalog is an immutable set of references. Safe for concurrent reads.
type Catalog struct {
	refs map[string]*Reference
}

// Key normalises an archetype name to its catalog key.
func Key(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(k, "the ") {
		k = k[len("the "):]
	}
	return strings.TrimSpace(k)
}

// Builtin returns the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		return nil, fmt.Errorf("archetype builtin: %w", err)
	}
	return Load(sub)
}

// LoadDir loads the built-in catalog and overlays entries found in dir.
// Entries in dir replace built-ins with the same key. An empty dir
// returns the built-in catalog unchanged.
func LoadDir(dir string) (*Catalog, error) {
	base, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}
	extra, err := Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("archetype dir %s: %w", dir, err)
	}
	return base.Merge(extra), nil
}

// Load reads every reference at the root of fsys. Accepted layouts are
// <name>.json, <name>.yaml, <name>.yml and <name>/<name>.json.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c := &Catalog{refs: make(map[string]*Reference)}
	for _, e := range entries {
		name := e.Name()
		var file string
		switch {
		case e.IsDir():
			file = path.Join(name, name+".json")
			if _, err := fs.Stat(fsys, file); errors.Is(err, fs.ErrNotExist) {
				continue
			}
		case isCatalogFile(name):
			file = name
		default:
			continue
		}

		ref, err := readReference(fsys, file)
		if err != nil {
			return nil, err
		}
		if ref.Name == "" {
			ref.Name = strings.TrimSuffix(path.Base(file), path.Ext(file))
		}
		c.refs[Key(ref.Name)] = ref
	}
	return c, nil
}

func isCatalogFile(name string) bool {
	switch path.Ext(name) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func readReference(fsys fs.FS, file string) (*Reference, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}

	var ref Reference
	switch path.Ext(file) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &ref)
	default:
		err = json.Unmarshal(data, &ref)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	return &ref, nil
}

// Merge returns a new catalog holding c's entries overlaid by other's.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{refs: make(map[string]*Reference, len(c.refs)+len(other.refs))}
	for k, v := range c.refs {
		out.refs[k] = v
	}
	for k, v := range other.refs {
		out.refs[k] = v
	}
	return out
}

// Lookup finds a reference by loose name ("The Creator", "creator").
func (c *Catalog) Lookup(name string) (*Reference, bool) {
	ref, ok := c.refs[Key(name)]
	return ref, ok
}

// Exact finds a reference whose Name equals name byte for byte.
func (c *Catalog) Exact(name string) (*Reference, bool) {
	ref, ok := c.refs[Key(name)]
	if !ok || ref.Name != name {
		return nil, false
	}
	return ref, true
}

// Names returns the display names of all references, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.refs))
	for _, ref := range c.refs {
		names = append(names, ref.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of references.
func (c *Catalog) Len() int { return len(c.refs) }
