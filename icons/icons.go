// Copyright 2025 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package icons turns a cloned SVG icon repository into django-cotton templates.
To generate templates for an icon set:
 - Clone the repository (see package fetch)
 - Describe its layout with a Corpus (see icons/heroicons and icons/tabler)
 - Run a Generator against the clone and an output directory

Every icon becomes one template holding a conditional block per style, and
an icon_map.json index lists the icons that were written.

Output is byte-stable across runs. Templates are trimmed to end with a single
newline after the last {% endif %}, and index keys are sorted (including the
style names), so output differs in whitespace and key order from indexes
that listed styles in canonical order.

Example usage:
  g := &icons.Generator{
      Corpus:    heroicons.Corpus(),
      RepoDir:   "heroicons",
      OutputDir: "templates/cotton/heroicon",
  }
  res, err := g.Generate(ctx)
*/
package icons

import (
	"errors"
	"fmt"
	"strings"
)

const (
	svgExt      = ".svg"
	templateExt = ".html"

	// IndexFile is the name of the JSON index written next to the templates.
	IndexFile = "icon_map.json"
	// UnknownVersion is recorded when the manifest has no usable version.
	UnknownVersion = "Unknown"
)

// Style is a named visual treatment of an icon set, stored in its own
// source directory.
type Style struct {
	Name string
	// Directory holding the style's SVG files, relative to the corpus
	// source directory.
	Dir string
	// Used instead of Dir if Dir does not exist.
	AltDir string
	// File name suffix (before .svg) that is not part of the icon name,
	// e.g. "-filled".
	Suffix string
}

// Corpus describes the layout of one upstream icon repository and how
// its icons are templated.
type Corpus struct {
	Name string
	// Git URL of the upstream repository.
	RepoURL string
	// Passed to git clone --depth, 0 clones the full history.
	CloneDepth int
	// Default local clone directory.
	RepoDir string
	// Default template output directory.
	OutputDir string

	// Path to the package manifest, relative to the repository root.
	Manifest string
	// Root of the style directories, relative to the repository root.
	SourceDir string
	// Styles in canonical order. Templates list style blocks in this order.
	Styles       []Style
	DefaultStyle string

	// The stroke-width value used by the source SVGs. Only this exact
	// value is templated.
	StrokeWidth string
	// Whether fixed width/height attributes are removed from the root svg.
	StripDimensions bool

	// Index key for the source version, defaults to <Name>_version.
	VersionKey string
	// Index key for the style mapping, defaults to "styles".
	StylesKey string
	// Value recorded for each style in the index, defaults to the style's
	// resolved directory.
	StyleMetadata func(Style) any
}

// ErrInvalidCorpus is returned for corpus definitions that cannot be
// generated.
var ErrInvalidCorpus = errors.New("invalid corpus")

// Validate checks that the corpus is complete enough to generate from.
func (c Corpus) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCorpus)
	}
	if len(c.Styles) == 0 {
		return fmt.Errorf("%w: %s has no styles", ErrInvalidCorpus, c.Name)
	}
	seen := map[string]bool{}
	for _, s := range c.Styles {
		if s.Name == "" || s.Dir == "" {
			return fmt.Errorf("%w: %s has a style without name or directory", ErrInvalidCorpus, c.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %s has duplicate style %q", ErrInvalidCorpus, c.Name, s.Name)
		}
		seen[s.Name] = true
	}
	if !seen[c.DefaultStyle] {
		return fmt.Errorf("%w: %s default style %q is not one of its styles", ErrInvalidCorpus, c.Name, c.DefaultStyle)
	}
	return nil
}

// Style returns the named style of the corpus.
func (c Corpus) Style(name string) (Style, bool) {
	for _, s := range c.Styles {
		if s.Name == name {
			return s, true
		}
	}
	return Style{}, false
}

// Index builds the index document for the given version and icons. Styles
// found in dirs are recorded with the directory actually read, other styles
// with their primary directory.
func (c Corpus) Index(version string, icons []string, dirs []SourceDir) Index {
	idx := Index{
		VersionKey: c.VersionKey,
		Version:    version,
		StylesKey:  c.StylesKey,
		Styles:     map[string]any{},
		Icons:      icons,
	}
	if idx.VersionKey == "" {
		idx.VersionKey = c.Name + "_version"
	}
	if idx.StylesKey == "" {
		idx.StylesKey = "styles"
	}
	for _, s := range c.Styles {
		for _, d := range dirs {
			if d.Style.Name == s.Name {
				s.Dir = d.Dir
			}
		}
		if c.StyleMetadata != nil {
			idx.Styles[s.Name] = c.StyleMetadata(s)
		} else {
			idx.Styles[s.Name] = s.Dir
		}
	}
	return idx
}

// TemplateName returns the template file name for an icon.
// e.g. TemplateName("arrow-left") == "arrow_left.html"
func TemplateName(icon string) string {
	return strings.ReplaceAll(icon, "-", "_") + templateExt
}
