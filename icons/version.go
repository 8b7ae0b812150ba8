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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

type manifest struct {
	Version string `json:"version" yaml:"version"`
}

// ReadVersion returns the version field of the manifest at path. JSON is
// assumed unless the file has a .yml or .yaml extension.
// The version is UnknownVersion if the file cannot be read or parsed, in
// which case the error is also returned so that the caller can report it.
// A manifest without a version is not an error.
func ReadVersion(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return UnknownVersion, err
	}
	var m manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return UnknownVersion, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Version == "" {
		return UnknownVersion, nil
	}
	return m.Version, nil
}
