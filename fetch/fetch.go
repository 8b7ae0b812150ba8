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

// Package fetch clones icon repositories with the git command line.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

var (
	fs          = afero.NewOsFs()
	execCommand = exec.CommandContext
)

// ErrInvalidRepo is returned when a Repo is missing its URL or directory.
var ErrInvalidRepo = errors.New("invalid repository")

// Repo describes a repository to clone.
type Repo struct {
	URL string
	// Local directory for the clone. Anything already there is removed.
	Dir string
	// Shallow clone depth, 0 for the full history.
	Depth int
}

// Args returns the git arguments that clone r.
func (r Repo) Args() []string {
	args := []string{"clone"}
	if r.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(r.Depth))
	}
	return append(args, r.URL, r.Dir)
}

// Error wraps a failed clone along with whatever git printed.
type Error struct {
	Repo   Repo
	Output string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("cloning %s: %v", e.Repo.URL, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Clone replaces r.Dir with a fresh clone of r.URL.
func Clone(ctx context.Context, r Repo, logger *log.Logger) error {
	if r.URL == "" || r.Dir == "" {
		return fmt.Errorf("%w: url=%q dir=%q", ErrInvalidRepo, r.URL, r.Dir)
	}
	if logger == nil {
		logger = log.Default()
	}
	if exists, _ := afero.Exists(fs, r.Dir); exists {
		logger.Info("removing existing clone", "dir", r.Dir)
		if err := fs.RemoveAll(r.Dir); err != nil {
			return &Error{Repo: r, Err: err}
		}
	}
	logger.Info("cloning", "url", r.URL, "dir", r.Dir)
	out, err := execCommand(ctx, "git", r.Args()...).CombinedOutput()
	if err != nil {
		return &Error{Repo: r, Output: strings.TrimSpace(string(out)), Err: err}
	}
	logger.Debug("clone complete", "output", strings.TrimSpace(string(out)))
	return nil
}
