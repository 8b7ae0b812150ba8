// Copyright 2018 Google Inc.
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

// Package githubfs provides a read-only afero FS backed by github.com.
// Paths take the form /<owner>/<repo>/<ref>/<path>, so live tests can read
// upstream icon sets without cloning them.
package githubfs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

var root = "https://raw.githubusercontent.com"

// Fs represents an in-memory filesystem backed by GitHub.
type Fs struct {
	// readonly view into the backing fs.
	afero.Fs
	// backing mem-mapped fs.
	backingFs afero.Fs

	mu      sync.Mutex
	fetched map[string]error
}

// New constructs an instance of GitHubFs.
// Calls to Open or Stat fetch the file from GitHub once, and then serve a
// readonly view of the fetched copy.
func New() afero.Fs {
	backingFs := afero.NewMemMapFs()
	return &Fs{
		Fs:        afero.NewReadOnlyFs(backingFs),
		backingFs: backingFs,
		fetched:   map[string]error{},
	}
}

func clean(name string) string {
	return "/" + strings.TrimPrefix(name, "/")
}

func (f *Fs) fetch(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fetched[name]; ok {
		return err
	}
	err := f.download(name)
	f.fetched[name] = err
	return err
}

func (f *Fs) download(name string) error {
	r, err := http.Get(root + name)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	switch {
	case r.StatusCode == http.StatusNotFound:
		return &os.PathError{Op: "open", Path: name, Err: os.ErrNotExist}
	case r.StatusCode != http.StatusOK:
		return errors.New(r.Status)
	}
	file, err := f.backingFs.Create(name)
	if err != nil {
		return err
	}
	if _, err = io.Copy(file, r.Body); err != nil {
		file.Close()
		return err
	}
	// Closing a written file updates its mtime, so close before Chtimes.
	if err = file.Close(); err != nil {
		return err
	}
	parsed, err := http.ParseTime(r.Header.Get("Last-Modified"))
	if err != nil {
		return nil
	}
	local := parsed.Local()
	return f.backingFs.Chtimes(name, local, local)
}

// Open opens a file, returning it or an error, if any happens.
func (f *Fs) Open(name string) (afero.File, error) {
	name = clean(name)
	if err := f.fetch(name); err != nil {
		return nil, err
	}
	return f.Fs.Open(name)
}

// OpenFile opens a file using the given flags and the given mode.
func (f *Fs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	name = clean(name)
	if err := f.fetch(name); err != nil {
		return nil, err
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Stat returns a FileInfo describing the named file, or an error, if any
// happens. Missing files report os.ErrNotExist.
func (f *Fs) Stat(name string) (os.FileInfo, error) {
	name = clean(name)
	if err := f.fetch(name); err != nil {
		return nil, err
	}
	return f.Fs.Stat(name)
}

// Name returns the name of this FileSystem
func (f *Fs) Name() string {
	return fmt.Sprintf("GitHubFS/backed by %s", f.Fs.Name())
}
