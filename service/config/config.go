// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config wraps the config package's TOML settings loader, logging
// what it loaded or that it fell back to built-in defaults.
package config

import (
	"context"
	"log"

	"github.com/solidcoredata/avrorecord/config"
)

// Settings is the effective, process-wide Settings most recently loaded by
// Run.
var Settings = config.Default()

// Run loads the TOML config file at path, if any, logging the outcome.
// An empty path leaves Settings at its built-in defaults.
func Run(ctx context.Context, path string) error {
	if path == "" {
		log.Print("config: no config path given, using built-in defaults")
		return nil
	}
	s, err := config.Load(path)
	if err != nil {
		return err
	}
	Settings = s
	log.Printf("config: loaded %s", path)
	return nil
}
