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
	"encoding/json"
	"path/filepath"

	"github.com/spf13/afero"
)

// Index is the metadata document written once per run alongside the
// templates.
type Index struct {
	VersionKey string
	Version    string
	StylesKey  string
	Styles     map[string]any
	Icons      []string
}

// MarshalJSON flattens the index into a single object keyed by the corpus
// specific key names.
func (idx Index) MarshalJSON() ([]byte, error) {
	icons := idx.Icons
	if icons == nil {
		icons = []string{}
	}
	return json.Marshal(map[string]any{
		idx.VersionKey: idx.Version,
		idx.StylesKey:  idx.Styles,
		"icons":        icons,
	})
}

// WriteIndex writes the index to IndexFile in dir, replacing any previous
// index, and returns the path written.
func WriteIndex(fs afero.Fs, dir string, idx Index) (string, error) {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, IndexFile)
	return path, afero.WriteFile(fs, path, append(data, '\n'), 0644)
}
