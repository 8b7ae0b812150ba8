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

package cli

import (
	"context"
	"slices"

	"github.com/soumya92/cottonicons/watch"
)

// watch generates every selected corpus once, then regenerates a corpus
// from its existing clone whenever one of its style directories changes,
// until ctx is done.
func (r *runner) watch(ctx context.Context) error {
	results, err := r.generateAll(ctx, !r.cfg.SkipFetch)
	if err != nil {
		return err
	}
	owners := map[string]string{}
	var dirs []string
	for name, res := range results {
		for _, d := range res.Dirs {
			owners[d.Path] = name
			dirs = append(dirs, d.Path)
		}
	}
	slices.Sort(dirs)
	w, err := watch.Dirs(dirs, r.cfg.Debounce, r.logs.Root())
	if err != nil {
		return err
	}
	defer w.Unsubscribe()
	r.logs.Root().Info("watching for changes", "dirs", len(dirs))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors:
			r.logs.Root().Warn("watch error", "err", err)
		case changed, ok := <-w.Updates:
			if !ok {
				return nil
			}
			var affected []string
			for _, d := range changed {
				if name, ok := owners[d]; ok && !slices.Contains(affected, name) {
					affected = append(affected, name)
				}
			}
			for _, c := range r.selected() {
				if !slices.Contains(affected, c.Name) {
					continue
				}
				r.logs.For(c.Name).Info("sources changed, regenerating")
				if _, err := r.generate(ctx, c); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					r.logs.For(c.Name).Error("regenerating", "err", err)
				}
			}
		}
	}
}
