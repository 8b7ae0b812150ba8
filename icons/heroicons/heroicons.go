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
Package heroicons describes Heroicons from
https://github.com/tailwindlabs/heroicons

It reads the pre-optimized SVGs under optimized/<size>/<style>, and
package.json for the version. Icons use a 1.5 stroke width in outline style.
*/
package heroicons

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/soumya92/cottonicons/icons"
)

// Default locations used when nothing else is configured.
const (
	RepoURL   = "https://github.com/tailwindlabs/heroicons.git"
	RepoDir   = "heroicons"
	OutputDir = "django_cotton_heroicons/templates/cotton/heroicon"
)

var fs = afero.NewOsFs()

// Corpus returns the Heroicons layout. Older releases kept styles
// directly under optimized/, so that is tried if the sized directory is
// missing.
func Corpus() icons.Corpus {
	return icons.Corpus{
		Name:      "heroicons",
		RepoURL:   RepoURL,
		RepoDir:   RepoDir,
		OutputDir: OutputDir,
		Manifest:  "package.json",
		SourceDir: "optimized",
		Styles: []icons.Style{
			{Name: "outline", Dir: "24/outline", AltDir: "outline"},
			{Name: "solid", Dir: "24/solid", AltDir: "solid"},
			{Name: "mini", Dir: "20/solid"},
			{Name: "micro", Dir: "16/solid"},
		},
		DefaultStyle: "outline",
		StrokeWidth:  "1.5",
		VersionKey:   "heroicons_version",
		StylesKey:    "styles",
		StyleMetadata: func(s icons.Style) any {
			return map[string]string{"source": s.Dir}
		},
	}
}

// Generate writes the Heroicons templates from the clone at repoDir into
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
