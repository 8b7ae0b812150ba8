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

// Command cottonicons generates django-cotton icon templates.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/soumya92/cottonicons/cli"
)

func main() {
	os.Exit(handleError(run()))
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	return cli.Commands(ctx, wd, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
}

func handleError(err error) int {
	if err != nil {
		fmt.Fprintln(os.Stderr, "cottonicons:", err)
		return 1
	}
	return 0
}
