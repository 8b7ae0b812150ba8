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

// Package logging builds the loggers used to report generator progress.
// All output goes through a single charmbracelet logger. Debug output can be
// enabled for every corpus, or only for the corpora named as fine-logged,
// e.g. `--finelog=tabler` while investigating a single icon set.
package logging

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Options control which messages are emitted.
type Options struct {
	// Verbose enables debug messages everywhere.
	Verbose bool
	// Fine lists the corpora that emit debug messages even when Verbose is
	// not set.
	Fine []string
}

// Logger hands out per-corpus loggers that share an output stream.
type Logger struct {
	root *log.Logger
	fine []string
}

// New creates a logger writing to output.
func New(output io.Writer, opts Options) *Logger {
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return &Logger{
		root: log.NewWithOptions(output, log.Options{Level: level}),
		fine: opts.Fine,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Options{})
}

// Root returns the logger for messages not tied to a corpus.
func (l *Logger) Root() *log.Logger {
	return l.root
}

// For returns a logger prefixed with the corpus name.
func (l *Logger) For(corpus string) *log.Logger {
	sub := l.root.WithPrefix(corpus)
	if slices.Contains(l.fine, corpus) {
		sub.SetLevel(log.DebugLevel)
	}
	return sub
}
