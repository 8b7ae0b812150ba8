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
	"fmt"
	"strings"
)

// Defaults are the values declared at the top of every template.
type Defaults struct {
	Variant        string
	StrokeWidth    string
	StrokeLinecap  string
	StrokeLinejoin string
}

// Variant is the normalized markup of one style of an icon.
type Variant struct {
	Style string
	SVG   string
}

// Compose combines the variants of one icon into a single template. Each
// variant is wrapped in a block selected by the variant variable, in the
// order given. Variants with empty markup are skipped, and Compose returns
// "" if nothing is left.
//
// If defaults.Variant has no block, the first variant is declared as the
// default instead.
func Compose(defaults Defaults, variants []Variant) string {
	var present []Variant
	for _, v := range variants {
		if v.SVG != "" {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return ""
	}
	if !hasStyle(present, defaults.Variant) {
		defaults.Variant = present[0].Style
	}
	var sb strings.Builder
	fmt.Fprintf(&sb,
		"<c-vars variant=%q stroke_width=%q stroke_linecap=%q stroke_linejoin=%q />\n\n",
		defaults.Variant, defaults.StrokeWidth, defaults.StrokeLinecap, defaults.StrokeLinejoin)
	for _, v := range present {
		fmt.Fprintf(&sb, "{%% if variant == '%s' %%}\n", v.Style)
		sb.WriteString(v.SVG)
		sb.WriteString("\n{% endif %}\n\n")
	}
	return strings.TrimSpace(sb.String()) + "\n"
}

func hasStyle(variants []Variant, style string) bool {
	for _, v := range variants {
		if v.Style == style {
			return true
		}
	}
	return false
}
