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
Package tabler describes Tabler Icons from
https://github.com/tabler/tabler-icons

It reads icons/outline and icons/filled, and package.json for the version.
Filled icons may or may not carry a -filled suffix depending on the
release, both are accepted. Outline icons use a stroke width of 2 and
embed a fixed 24px size, which is removed.
*/
package tabler

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/soumya92/cottonicons/icons"
)

// Default locations used when nothing else is configured.
const (
	RepoURL   = "https://github.com/tabler/tabler-icons.git"
	RepoDir   = "tabler-icons-repo"
	OutputDir = "cotton_icons/templates/cotton/tablericon"
)

var fs = afero.NewOsFs()

// Corpus returns the Tabler Icons layout.
func Corpus() icons.Corpus {
	return icons.Corpus{
		Name:       "tabler",
		RepoURL:    RepoURL,
		CloneDepth: 1,
		RepoDir:    RepoDir,
		OutputDir:  OutputDir,
		Manifest:   "package.json",
		SourceDir:  "icons",
		Styles: []icons.Style{
			{Name: "outline", Dir: "outline"},
			{Name: "filled", Dir: "filled", Suffix: "-filled"},
		},
		DefaultStyle:    "outline",
		StrokeWidth:     "2",
		StripDimensions: true,
		VersionKey:      "tablericons_version",
		StylesKey:       "styles_source_subdirs",
	}
}

// Generate writes the Tabler templates from the clone at repoDir into
// outputDir.
func Generate(ctx context.Context, repoDir, outputDir string, logger *log.Logger) (*icons.Result, error) {
	g := &icons.Generator{
		Corpus:    Corpus(),
		RepoDir:   repoDir,
		OutputDir: outputDir,
		Fs:        fs,
		Logger:    logger,
	}
	return g.Generate(ctx)
}
