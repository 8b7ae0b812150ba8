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
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoSources is returned when none of a corpus' style directories exist.
var ErrNoSources = errors.New("no usable source directory")

// SourceDir is a style whose directory was found on disk.
type SourceDir struct {
	Style Style
	// Dir is whichever of Style.Dir or Style.AltDir exists.
	Dir  string
	Path string
}

// Sources is the result of enumerating a corpus' style directories.
type Sources struct {
	// Found directories, in style order.
	Dirs []SourceDir
	// Styles whose directory (and alternate directory) are missing.
	Missing []Style
	// Sorted, distinct icon base names across all found styles.
	Names []string
}

// Enumerate resolves each style's directory under root and collects the
// union of icon names across them. Styles without a directory are skipped.
func Enumerate(fs afero.Fs, root string, styles []Style) (Sources, error) {
	var src Sources
	names := map[string]struct{}{}
	for _, s := range styles {
		rel, dir, ok := resolveDir(fs, root, s)
		if !ok {
			src.Missing = append(src.Missing, s)
			continue
		}
		files, err := afero.ReadDir(fs, dir)
		if err != nil {
			src.Missing = append(src.Missing, s)
			continue
		}
		src.Dirs = append(src.Dirs, SourceDir{Style: s, Dir: rel, Path: dir})
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), svgExt) {
				continue
			}
			names[s.baseName(f.Name())] = struct{}{}
		}
	}
	if len(src.Dirs) == 0 {
		return src, ErrNoSources
	}
	src.Names = make([]string, 0, len(names))
	for n := range names {
		src.Names = append(src.Names, n)
	}
	sort.Strings(src.Names)
	return src, nil
}

func resolveDir(fs afero.Fs, root string, s Style) (rel, path string, ok bool) {
	for _, d := range []string{s.Dir, s.AltDir} {
		if d == "" {
			continue
		}
		p := filepath.Join(root, filepath.FromSlash(d))
		if exists, _ := afero.DirExists(fs, p); exists {
			return d, p, true
		}
	}
	return "", "", false
}

func (s Style) baseName(filename string) string {
	return strings.TrimSuffix(strings.TrimSuffix(filename, svgExt), s.Suffix)
}

// Lookup returns the path of the named icon in this directory. Suffixed
// names are preferred over bare names for styles that declare a suffix.
func (d SourceDir) Lookup(fs afero.Fs, name string) (string, bool) {
	candidates := []string{name + svgExt}
	if d.Style.Suffix != "" {
		candidates = []string{name + d.Style.Suffix + svgExt, name + svgExt}
	}
	for _, c := range candidates {
		p := filepath.Join(d.Path, c)
		if info, err := fs.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
