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

package icons

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Template markers substituted by django-cotton at render time.
const (
	AttrsMarker          = "{{ attrs }}"
	StrokeWidthMarker    = "{{ stroke_width }}"
	StrokeLinecapMarker  = "{{ stroke_linecap }}"
	StrokeLinejoinMarker = "{{ stroke_linejoin }}"
)

// attrsPlaceholder is added to the root svg element so that rendering
// leaves a known string where the caller's attributes go.
const attrsPlaceholder = "attrs"

// ErrNoSVG is returned for documents without an svg element.
var ErrNoSVG = errors.New("no <svg> element found")

// NormalizeOptions control the corpus specific parts of normalization.
type NormalizeOptions struct {
	// The source stroke-width value that is replaced by a marker.
	StrokeWidth string
	// Remove width and height from the root svg element.
	StripDimensions bool
}

// NormalizeFile reads and normalizes the SVG at path.
func NormalizeFile(fs afero.Fs, path string, opts NormalizeOptions) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Normalize(f, opts)
}

// Normalize parses an SVG document and returns the markup of its root svg
// element with comments removed and the stroke presentation attributes
// replaced by template markers. Other attributes, including fill and
// stroke colours, are kept as they are.
func Normalize(r io.Reader, opts NormalizeOptions) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	removeComments(doc)
	svg := findSVG(doc)
	if svg == nil {
		return "", ErrNoSVG
	}
	attrs := svg.Attr[:0]
	for _, a := range svg.Attr {
		if a.Namespace == "" && a.Key == attrsPlaceholder {
			continue
		}
		if opts.StripDimensions && a.Namespace == "" && (a.Key == "width" || a.Key == "height") {
			continue
		}
		attrs = append(attrs, a)
	}
	svg.Attr = append(attrs, html.Attribute{Key: attrsPlaceholder})

	var sb strings.Builder
	if err := html.Render(&sb, svg); err != nil {
		return "", err
	}
	out := sb.String()
	for _, rep := range replacements(opts.StrokeWidth) {
		out = strings.ReplaceAll(out, rep[0], rep[1])
	}
	return out, nil
}

// replacements lists the literal substitutions in the order they are
// applied.
func replacements(strokeWidth string) [][2]string {
	return [][2]string{
		{attrsPlaceholder + `=""`, AttrsMarker},
		{`stroke-width="` + strokeWidth + `"`, `stroke-width="` + StrokeWidthMarker + `"`},
		{`stroke-linecap="round"`, `stroke-linecap="` + StrokeLinecapMarker + `"`},
		{`stroke-linejoin="round"`, `stroke-linejoin="` + StrokeLinejoinMarker + `"`},
	}
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Svg || n.Data == "svg") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if svg := findSVG(c); svg != nil {
			return svg
		}
	}
	return nil
}
