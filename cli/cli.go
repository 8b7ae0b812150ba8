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

// Package cli implements the cottonicons command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/martinlindhe/unit"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/soumya92/cottonicons/config"
	"github.com/soumya92/cottonicons/fetch"
	"github.com/soumya92/cottonicons/format"
	"github.com/soumya92/cottonicons/icons"
	"github.com/soumya92/cottonicons/icons/heroicons"
	"github.com/soumya92/cottonicons/icons/tabler"
	"github.com/soumya92/cottonicons/logging"
)

var (
	fs    = afero.NewOsFs()
	clone = fetch.Clone
)

type generateFunc func(ctx context.Context, repoDir, outputDir string, logger *log.Logger) (*icons.Result, error)

type corpus struct {
	icons.Corpus
	generate generateFunc
}

// corpora in the order they run.
var corpora = []corpus{
	{heroicons.Corpus(), heroicons.Generate},
	{tabler.Corpus(), tabler.Generate},
}

func corpusNames() []string {
	var names []string
	for _, c := range corpora {
		names = append(names, c.Name)
	}
	return names
}

type flags struct {
	configPath   string
	corpora      []string
	skipFetch    bool
	snapshotRoot string
	outputRoot   string
	verbose      bool
	fineLog      []string
	debounce     time.Duration
}

// Commands runs the cottonicons command line. args excludes the program
// name, relative paths are resolved against wd, and environ supplies the
// COTTONICONS_* settings.
func Commands(ctx context.Context, wd string, args, environ []string, stdout, stderr io.Writer) error {
	f := new(flags)
	root := &cobra.Command{
		Use:   "cottonicons",
		Short: "Generate django-cotton icon templates from Heroicons and Tabler Icons",
		Long: `cottonicons clones the Heroicons and Tabler Icons repositories and
converts every icon into a single django-cotton template with one block per
style, along with an icon_map.json index of the generated icons.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringSliceVar(&f.corpora, "corpus", nil, fmt.Sprintf("corpus to generate, one of %v (default all)", corpusNames()))
	pf.BoolVar(&f.skipFetch, "skip-fetch", false, "reuse existing clones instead of cloning")
	pf.StringVar(&f.snapshotRoot, "snapshot-root", ".", "directory holding the clones")
	pf.StringVar(&f.outputRoot, "output-root", "", "write templates to <output-root>/<corpus> instead of the package directories")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringSliceVar(&f.fineLog, "finelog", nil, "corpora to enable debug logging for")
	pf.DurationVar(&f.debounce, "debounce", config.DefaultDebounce, "how long watch waits for changes to settle")

	newRunner := func(cmd *cobra.Command) (*runner, error) {
		cfg, err := f.settings(cmd, wd, environ)
		if err != nil {
			return nil, err
		}
		logs := logging.New(stdout, logging.Options{Verbose: cfg.Verbose, Fine: cfg.FineLog})
		return &runner{cfg: cfg, wd: wd, logs: logs}, nil
	}
	generate := func(cmd *cobra.Command, _ []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		_, err = r.generateAll(cmd.Context(), !r.cfg.SkipFetch)
		return err
	}
	root.RunE = generate
	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Fetch the icon repositories and generate templates (default)",
			Args:  cobra.NoArgs,
			RunE:  generate,
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Generate, then regenerate whenever the cloned icon sources change",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				r, err := newRunner(cmd)
				if err != nil {
					return err
				}
				return r.watch(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the cottonicons version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return versionCommand(stdout)
			},
		},
	)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// settings loads the configuration and applies any flags that were set.
func (f *flags) settings(cmd *cobra.Command, wd string, environ []string) (config.Config, error) {
	path := f.configPath
	if path != "" {
		path = resolve(wd, path)
	}
	cfg, err := config.Load(fs, path, env.ToMap(environ))
	if err != nil {
		return cfg, err
	}
	set := cmd.Flags().Changed
	if set("corpus") {
		cfg.Corpora = f.corpora
	}
	if set("skip-fetch") {
		cfg.SkipFetch = f.skipFetch
	}
	if set("snapshot-root") {
		cfg.SnapshotRoot = f.snapshotRoot
	}
	if set("output-root") {
		cfg.OutputRoot = f.outputRoot
	}
	if set("verbose") {
		cfg.Verbose = f.verbose
	}
	if set("finelog") {
		cfg.FineLog = f.fineLog
	}
	if set("debounce") {
		cfg.Debounce = f.debounce
	}
	if err := cfg.Validate(corpusNames()...); err != nil {
		return cfg, err
	}
	cfg.SnapshotRoot = resolve(wd, cfg.SnapshotRoot)
	if cfg.OutputRoot != "" {
		cfg.OutputRoot = resolve(wd, cfg.OutputRoot)
	}
	return cfg, nil
}

func resolve(wd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(wd, path)
}

type runner struct {
	cfg  config.Config
	wd   string
	logs *logging.Logger
}

func (r *runner) selected() []corpus {
	names := r.cfg.Selected(corpusNames()...)
	var out []corpus
	for _, c := range corpora {
		if slices.Contains(names, c.Name) {
			out = append(out, c)
		}
	}
	return out
}

func (r *runner) repoDir(c corpus) string {
	return filepath.Join(r.cfg.SnapshotRoot, c.RepoDir)
}

func (r *runner) outputDir(c corpus) string {
	if r.cfg.OutputRoot != "" {
		return filepath.Join(r.cfg.OutputRoot, c.Name)
	}
	return filepath.Join(r.wd, filepath.FromSlash(c.OutputDir))
}

// generateAll runs every selected corpus in order. Clone failures abort the
// run. A corpus without any sources is reported and skipped.
func (r *runner) generateAll(ctx context.Context, fetchFirst bool) (map[string]*icons.Result, error) {
	results := map[string]*icons.Result{}
	for _, c := range r.selected() {
		if fetchFirst {
			repo := fetch.Repo{URL: c.RepoURL, Dir: r.repoDir(c), Depth: c.CloneDepth}
			if err := clone(ctx, repo, r.logs.For(c.Name)); err != nil {
				return results, err
			}
		}
		res, err := r.generate(ctx, c)
		if err != nil {
			return results, err
		}
		if res != nil {
			results[c.Name] = res
		}
	}
	return results, nil
}

// generate runs a single corpus from its existing clone and logs a summary.
func (r *runner) generate(ctx context.Context, c corpus) (*icons.Result, error) {
	logger := r.logs.For(c.Name)
	start := time.Now()
	res, err := c.generate(ctx, r.repoDir(c), r.outputDir(c), logger)
	if errors.Is(err, icons.ErrNoSources) {
		logger.Error("skipping corpus", "repo", r.repoDir(c), "err", err)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	size := unit.Datasize(res.Bytes) * unit.Byte
	logger.Info("generated icon map",
		"icons", format.Count(len(res.Icons)),
		"names", format.Count(len(res.Names)),
		"size", format.Bytesize(size),
		"rate", format.Byterate(format.Rate(size, elapsed)),
		"elapsed", format.Duration(elapsed),
		"index", res.IndexPath,
	)
	return res, nil
}
