// Package config loads persisted settings for avrorecordctl from a TOML
// file: a chunk size and a strict-UTF-8 flag. The values are loaded and
// kept, but no encoder or codec in this module reads them: record encoding
// is not chunked, and string/char columns always reject invalid UTF-8 on
// ingest.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings holds the persisted defaults read from a TOML config file.
type Settings struct {
	ChunkSize  int  `toml:"chunk_size"`
	StrictUTF8 bool `toml:"strict_utf8"`
}

// Default returns the settings avrorecordctl uses when no config file is
// given.
func Default() *Settings {
	return &Settings{ChunkSize: 4096, StrictUTF8: true}
}

// Load reads and parses a TOML config file at path, filling in any field
// left unset with Default's value.
func Load(path string) (*Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return s, nil
}
