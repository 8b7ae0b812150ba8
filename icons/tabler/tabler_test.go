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

package tabler

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soumya92/cottonicons/icons"
	"github.com/soumya92/cottonicons/testing/cron"
	"github.com/soumya92/cottonicons/testing/githubfs"
)

const outline = `<!--
tags: [bell, notification]
category: System
-->
<svg
  xmlns="http://www.w3.org/2000/svg"
  width="24"
  height="24"
  viewBox="0 0 24 24"
  fill="none"
  stroke="currentColor"
  stroke-width="2"
  stroke-linecap="round"
  stroke-linejoin="round"
>
  <path d="M10 5a2 2 0 1 1 4 0" />
</svg>
`

const filled = `<!--
category: System
-->
<svg
  xmlns="http://www.w3.org/2000/svg"
  width="24"
  height="24"
  viewBox="0 0 24 24"
  fill="currentColor"
>
  <path d="M14.235 19c.865 0 1.322 1.024" />
</svg>
`

func TestCorpus(t *testing.T) {
	c := Corpus()
	require.NoError(t, c.Validate())
	assert.Equal(t, 1, c.CloneDepth)
	assert.True(t, c.StripDimensions)
	f, ok := c.Style("filled")
	require.True(t, ok)
	assert.Equal(t, "-filled", f.Suffix)
}

func TestGenerate(t *testing.T) {
	fs = afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/tabler/package.json", []byte(`{"version": "3.31.0"}`), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/outline/bell.svg", []byte(outline), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/outline/arrow-left.svg", []byte(outline), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/filled/bell-filled.svg", []byte(filled), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/filled/arrow-left.svg", []byte(filled), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/filled/heart-filled.svg", []byte(filled), 0644)

	res, err := Generate(context.Background(), "/src/tabler", "/out", nil)
	require.NoError(t, err)
	assert.Equal(t, "3.31.0", res.Version)
	assert.Equal(t, []string{"arrow-left", "bell", "heart"}, res.Icons)

	bell, err := afero.ReadFile(fs, "/out/bell.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(bell),
		`<c-vars variant="outline" stroke_width="2" stroke_linecap="round" stroke_linejoin="round" />`))
	assert.Contains(t, string(bell), "{% if variant == 'outline' %}")
	assert.Contains(t, string(bell), "{% if variant == 'filled' %}")
	assert.NotContains(t, string(bell), "category")
	assert.NotContains(t, string(bell), ` width="24"`)
	assert.NotContains(t, string(bell), ` height="24"`)
	assert.Contains(t, string(bell), `fill="currentColor"`)

	arrow, err := afero.ReadFile(fs, "/out/arrow_left.html")
	require.NoError(t, err)
	assert.Contains(t, string(arrow), "{% if variant == 'filled' %}", "unsuffixed filled icons are found")

	heart, err := afero.ReadFile(fs, "/out/heart.html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(heart), `<c-vars variant="filled" `))
	assert.Equal(t, 1, strings.Count(string(heart), "{% endif %}"))

	data, err := afero.ReadFile(fs, "/out/icon_map.json")
	require.NoError(t, err)
	var index map[string]any
	require.NoError(t, json.Unmarshal(data, &index))
	assert.Equal(t, "3.31.0", index["tablericons_version"])
	assert.Equal(t, map[string]any{"outline": "outline", "filled": "filled"}, index["styles_source_subdirs"])
}

func TestMissingOutline(t *testing.T) {
	fs = afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/tabler/package.json", []byte(`{"name": "@tabler/icons"}`), 0644)
	afero.WriteFile(fs, "/src/tabler/icons/filled/bell-filled.svg", []byte(filled), 0644)

	res, err := Generate(context.Background(), "/src/tabler", "/out", nil)
	require.NoError(t, err)
	assert.Equal(t, icons.UnknownVersion, res.Version)
	assert.Equal(t, []string{"bell"}, res.Icons)
}

func TestInvalid(t *testing.T) {
	fs = afero.NewMemMapFs()
	afero.WriteFile(fs, "/src/tabler/package.json", []byte(`{"version": "3.31.0"}`), 0644)
	_, err := Generate(context.Background(), "/src/tabler", "/out", nil)
	assert.ErrorIs(t, err, icons.ErrNoSources)
	exists, _ := afero.Exists(fs, "/out/icon_map.json")
	assert.False(t, exists)
}

// TestLive tests that the current main branch of tabler-icons still has
// the layout and markup this package expects. It only runs in scheduled
// CI builds.
func TestLive(t *testing.T) {
	cron.Test(t, func() error {
		live := githubfs.New()
		const repo = "/tabler/tabler-icons/main"
		if _, err := icons.ReadVersion(live, repo+"/package.json"); err != nil {
			return err
		}
		c := Corpus()
		opts := icons.NormalizeOptions{StrokeWidth: c.StrokeWidth, StripDimensions: c.StripDimensions}
		svg, err := icons.NormalizeFile(live, repo+"/icons/outline/bell.svg", opts)
		if err != nil {
			return err
		}
		if !strings.Contains(svg, icons.StrokeWidthMarker) {
			return fmt.Errorf("stroke width not templated in %s", svg)
		}
		filledDir := icons.SourceDir{Style: c.Styles[1], Path: repo + "/icons/filled"}
		path, ok := filledDir.Lookup(live, "bell")
		if !ok {
			return fmt.Errorf("no filled bell icon")
		}
		_, err = icons.NormalizeFile(live, path, opts)
		return err
	})
}
