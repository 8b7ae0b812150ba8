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

// Package format provides helpers for the human-readable run summaries.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/martinlindhe/unit"
)

// Count formats a count with thousands separators.
// e.g. Count(1234) == "1,234"
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// Bytesize formats a Datasize in SI units using go-humanize.
// e.g. Bytesize(10 * unit.Megabyte) == "10 MB"
func Bytesize(v unit.Datasize) string {
	intval := uint64(v.Bytes())
	return humanize.Bytes(intval)
}

// Byterate formats a Datarate in SI units using go-humanize.
// e.g. Byterate(10 * unit.MegabytePerSecond) == "10 MB/s"
func Byterate(v unit.Datarate) string {
	intval := uint64(v.BytesPerSecond())
	return fmt.Sprintf("%s/s", humanize.Bytes(intval))
}

// Rate is the average rate at which size was produced over elapsed.
func Rate(size unit.Datasize, elapsed time.Duration) unit.Datarate {
	if elapsed <= 0 {
		return 0
	}
	return unit.Datarate(float64(size) / elapsed.Seconds())
}

// Duration rounds d for display.
// e.g. Duration(1234567 * time.Microsecond) == "1.23s"
func Duration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Millisecond).String()
	default:
		return d.String()
	}
}
