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
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// Generator writes the templates and index for one corpus.
type Generator struct {
	Corpus Corpus
	// Root of the local clone.
	RepoDir string
	// Directory receiving the templates and index.
	OutputDir string
	// Filesystem to read and write, defaults to the OS filesystem.
	Fs afero.Fs
	// Progress logger, defaults to discarding all output.
	Logger *log.Logger
}

// Result summarises a generator run.
type Result struct {
	Version string
	// Distinct icon names found in the sources.
	Names []string
	// Icons that had a template written, in name order. These are the
	// icons listed in the index, so names whose every style failed to
	// normalize are left out of it.
	Icons []string
	// Total size of the templates written.
	Bytes int64
	// Style directories that were read.
	Dirs      []SourceDir
	IndexPath string
}

// Generate runs the pipeline: read the version, enumerate icons, then
// normalize, compose and write each icon before writing the index.
// Unreadable files and missing styles are logged and skipped. ErrNoSources
// is returned without writing anything if no style directory exists.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if err := g.Corpus.Validate(); err != nil {
		return nil, err
	}
	fs, logger := g.fs(), g.logger()
	c := g.Corpus

	res := &Result{}
	manifest := filepath.Join(g.RepoDir, filepath.FromSlash(c.Manifest))
	version, err := ReadVersion(fs, manifest)
	if err != nil {
		logger.Warn("could not read version", "manifest", manifest, "err", err)
	}
	res.Version = version
	logger.Info("version detected", "version", version)

	src, err := Enumerate(fs, filepath.Join(g.RepoDir, filepath.FromSlash(c.SourceDir)), c.Styles)
	for _, s := range src.Missing {
		logger.Warn("style directory not found", "style", s.Name, "dir", s.Dir)
	}
	if err != nil {
		return res, fmt.Errorf("%s: %w", c.Name, err)
	}
	for _, d := range src.Dirs {
		logger.Debug("reading style", "style", d.Style.Name, "dir", d.Path)
	}
	res.Names, res.Dirs = src.Names, src.Dirs

	if err := fs.MkdirAll(g.OutputDir, 0755); err != nil {
		return res, err
	}
	opts := NormalizeOptions{StrokeWidth: c.StrokeWidth, StripDimensions: c.StripDimensions}
	defaults := Defaults{
		Variant:        c.DefaultStyle,
		StrokeWidth:    c.StrokeWidth,
		StrokeLinecap:  "round",
		StrokeLinejoin: "round",
	}
	for _, name := range src.Names {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var variants []Variant
		for _, d := range src.Dirs {
			path, ok := d.Lookup(fs, name)
			if !ok {
				continue
			}
			svg, err := NormalizeFile(fs, path, opts)
			if err != nil {
				logger.Warn("skipping style", "icon", name, "style", d.Style.Name, "err", err)
				continue
			}
			variants = append(variants, Variant{Style: d.Style.Name, SVG: svg})
		}
		doc := Compose(defaults, variants)
		if doc == "" {
			logger.Debug("no usable styles", "icon", name)
			continue
		}
		out := filepath.Join(g.OutputDir, TemplateName(name))
		if err := afero.WriteFile(fs, out, []byte(doc), 0644); err != nil {
			logger.Error("could not write template", "file", out, "err", err)
			continue
		}
		logger.Info("generated icon", "file", out)
		res.Icons = append(res.Icons, name)
		res.Bytes += int64(len(doc))
	}

	res.IndexPath, err = WriteIndex(fs, g.OutputDir, c.Index(version, res.Icons, res.Dirs))
	if err != nil {
		return res, fmt.Errorf("writing index: %w", err)
	}
	return res, nil
}

func (g *Generator) fs() afero.Fs {
	if g.Fs == nil {
		return afero.NewOsFs()
	}
	return g.Fs
}

func (g *Generator) logger() *log.Logger {
	if g.Logger == nil {
		return log.New(io.Discard)
	}
	return g.Logger
}
