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
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/typelate/dom"
	"github.com/typelate/dom/spec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const heroSolidBell = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="currentColor" aria-hidden="true" data-slot="icon">
  <path fill-rule="evenodd" d="M5.25 9a6.75 6.75 0 0 1 13.5 0v.75" clip-rule="evenodd"/>
</svg>
`

func testRepo(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, contents := range map[string]string{
		"/repo/package.json":                        `{"name": "test", "version": "2.1.5"}`,
		"/repo/optimized/24/outline/arrow-left.svg": heroArrowLeft,
		"/repo/optimized/24/outline/bell.svg":       heroArrowLeft,
		"/repo/optimized/24/solid/bell.svg":         heroSolidBell,
		"/repo/optimized/24/solid/check.svg":        heroSolidBell,
		"/repo/optimized/24/solid/broken.svg":       "this is not an svg",
	} {
		require.NoError(t, afero.WriteFile(fs, path, []byte(contents), 0644))
	}
	return fs
}

func parseTemplate(t *testing.T, fs afero.Fs, path string) spec.DocumentFragment {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	nodes, err := html.ParseFragment(strings.NewReader("<div>"+string(data)+"</div>"), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     atom.Body.String(),
	})
	require.NoError(t, err)
	return dom.NewDocumentFragment(nodes)
}

func TestGenerate(t *testing.T) {
	fs := testRepo(t)
	var logs bytes.Buffer
	g := &Generator{
		Corpus:    testCorpus(),
		RepoDir:   "/repo",
		OutputDir: "/out",
		Fs:        fs,
		Logger:    log.New(&logs),
	}
	res, err := g.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2.1.5", res.Version)
	assert.Equal(t, []string{"arrow-left", "bell", "broken", "check"}, res.Names)
	assert.Equal(t, []string{"arrow-left", "bell", "check"}, res.Icons)
	assert.Equal(t, "/out/icon_map.json", res.IndexPath)
	assert.Positive(t, res.Bytes)
	require.Len(t, res.Dirs, 2)

	arrow := parseTemplate(t, fs, "/out/arrow_left.html")
	assert.Equal(t, 1, arrow.QuerySelectorAll("svg").Length(), "only the outline style exists")
	assert.Equal(t, "outline", arrow.QuerySelector("c-vars").GetAttribute("variant"))

	bell := parseTemplate(t, fs, "/out/bell.html")
	assert.Equal(t, 2, bell.QuerySelectorAll("svg").Length())
	data, _ := afero.ReadFile(fs, "/out/bell.html")
	assert.Less(t,
		strings.Index(string(data), "{% if variant == 'outline' %}"),
		strings.Index(string(data), "{% if variant == 'solid' %}"))
	assert.Contains(t, string(data), `fill="currentColor"`)
	assert.Contains(t, string(data), `stroke-width="{{ stroke_width }}"`)

	check := parseTemplate(t, fs, "/out/check.html")
	assert.Equal(t, "solid", check.QuerySelector("c-vars").GetAttribute("variant"),
		"default style falls back to one that has a block")

	exists, _ := afero.Exists(fs, "/out/broken.html")
	assert.False(t, exists, "unparsable sources produce no template")

	var idx map[string]any
	data, err = afero.ReadFile(fs, "/out/icon_map.json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &idx))
	assert.Equal(t, "2.1.5", idx["test_version"])
	assert.Equal(t, []any{"arrow-left", "bell", "check"}, idx["icons"])
	for _, icon := range idx["icons"].([]any) {
		exists, _ := afero.Exists(fs, "/out/"+TemplateName(icon.(string)))
		assert.True(t, exists, "template for indexed icon %s", icon)
	}

	assert.Contains(t, logs.String(), "generated icon")
	assert.Contains(t, logs.String(), "skipping style")
	assert.Contains(t, logs.String(), "style directory not found")
}

func TestGenerateIsReproducible(t *testing.T) {
	fs := testRepo(t)
	g := &Generator{Corpus: testCorpus(), RepoDir: "/repo", OutputDir: "/out", Fs: fs}
	_, err := g.Generate(context.Background())
	require.NoError(t, err)
	first, _ := afero.ReadFile(fs, "/out/bell.html")
	firstIdx, _ := afero.ReadFile(fs, "/out/icon_map.json")

	_, err = g.Generate(context.Background())
	require.NoError(t, err)
	second, _ := afero.ReadFile(fs, "/out/bell.html")
	secondIdx, _ := afero.ReadFile(fs, "/out/icon_map.json")

	assert.Equal(t, first, second)
	assert.Equal(t, firstIdx, secondIdx)
}

func TestGenerateMissingManifest(t *testing.T) {
	fs := testRepo(t)
	fs.Remove("/repo/package.json")
	var logs bytes.Buffer
	g := &Generator{Corpus: testCorpus(), RepoDir: "/repo", OutputDir: "/out", Fs: fs, Logger: log.New(&logs)}
	res, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, UnknownVersion, res.Version)
	assert.Contains(t, logs.String(), "could not read version")
}

func TestGenerateNoSources(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/repo/package.json", []byte(`{"version": "1"}`), 0644)
	g := &Generator{Corpus: testCorpus(), RepoDir: "/repo", OutputDir: "/out", Fs: fs}
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrNoSources)
	exists, _ := afero.Exists(fs, "/out/icon_map.json")
	assert.False(t, exists)
}

func TestGenerateInvalidCorpus(t *testing.T) {
	c := testCorpus()
	c.DefaultStyle = "duotone"
	g := &Generator{Corpus: c, RepoDir: "/repo", OutputDir: "/out", Fs: testRepo(t)}
	_, err := g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCorpus)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Generator{Corpus: testCorpus(), RepoDir: "/repo", OutputDir: "/out", Fs: testRepo(t)}
	_, err := g.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
