package main

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
)

// fileConfig is the shape of a TOML render preset file. Every key is
// optional; absent keys leave the command-line value in place.
//
//	# render.toml
//	width = 1920
//	height = 1080
//	preset = "seahorse"
//	iterations = 1000
//	workers = 8
//	supersample = 2
//	color = true
type fileConfig struct {
	Width       int    `koanf:"width"`
	Height      int    `koanf:"height"`
	UpperLeft   string `koanf:"upper_left"`
	LowerRight  string `koanf:"lower_right"`
	Preset      string `koanf:"preset"`
	Iterations  int    `koanf:"iterations"`
	Workers     int    `koanf:"workers"`
	Supersample int    `koanf:"supersample"`
	Color       bool   `koanf:"color"`
}

// loadConfig reads a TOML preset file. The second return value reports
// which keys were actually present, so callers can apply only those.
func loadConfig(path string) (fileConfig, map[string]bool, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return fileConfig{}, nil, fmt.Errorf("config %q: %w", path, err)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return fileConfig{}, nil, fmt.Errorf("config %q: %w", path, err)
	}

	present := make(map[string]bool)
	for _, key := range k.Keys() {
		present[key] = true
	}
	return fc, present, nil
}
