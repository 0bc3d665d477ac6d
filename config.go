// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mosaic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Config holds all parameters of a mosaic run. It can be stored as json,
// command line flags override the values from the file.
type Config struct {
	Target   string `json:"target"`
	Output   string `json:"output"`
	TilesDir string `json:"tiles_dir"`

	CellWidth  int `json:"cell_width"`
	CellHeight int `json:"cell_height"`
	Candidates int `json:"candidates"`
	// Seed of the random tile choice, 0 means a seed based on the current
	// time.
	Seed        int64 `json:"seed"`
	NumRoutines int   `json:"num_routines"`
	// Interpolation selects the resize filter, see GetInterP.
	Interpolation uint   `json:"interpolation"`
	Edge          string `json:"edge"`
	JPGQuality    int    `json:"jpeg_quality"`

	// CacheDir is the directory of the tile cache, empty disables the cache.
	CacheDir string `json:"cache_dir"`
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a configuration with the default values, Target is
// empty and must be set.
func DefaultConfig() *Config {
	return &Config{
		Output:        "mosaic.png",
		TilesDir:      "./tiles",
		CellWidth:     15,
		CellHeight:    15,
		Candidates:    DefaultCandidates,
		NumRoutines:   DefaultNumRoutines(),
		Interpolation: 3,
		Edge:          EdgeClip.String(),
		JPGQuality:    100,
		LogLevel:      "info",
	}
}

// LoadConfig loads the configuration from a json file, values missing in the
// file keep their default. If the file doesn't exist the default
// configuration is returned.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Can't read config file: %w", err)
	}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("Can't parse config file: %w", err)
	}
	return config, nil
}

// SaveConfig writes config as json to path.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("Can't create config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("Can't marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Can't write config file: %w", err)
	}
	return nil
}

// Validate checks the values of the configuration. It does not check if
// any of the paths exist.
func (c *Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("No target image given")
	}
	if c.Output == "" {
		return fmt.Errorf("No output file given")
	}
	if c.TilesDir == "" {
		return fmt.Errorf("No tiles directory given")
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("Invalid cell size %dx%d: %w", c.CellWidth, c.CellHeight, ErrInvalidCellSize)
	}
	if c.Candidates < 1 {
		return fmt.Errorf("Invalid number of candidates %d: %w", c.Candidates, ErrInvalidK)
	}
	if c.JPGQuality < 1 || c.JPGQuality > 100 {
		return fmt.Errorf("Invalid jpeg quality %d, must be between 1 and 100", c.JPGQuality)
	}
	if _, err := ParseEdgeMode(c.Edge); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("Invalid log level: %s", c.LogLevel)
	}
	return nil
}

// Resizer returns the resizer selected by Interpolation.
func (c *Config) Resizer() ImageResizer {
	return NewNfntResizer(GetInterP(c.Interpolation))
}

// EdgeMode returns the parsed Edge value.
func (c *Config) EdgeMode() (EdgeMode, error) {
	return ParseEdgeMode(c.Edge)
}

// ExpandPaths replaces all paths by their absolute version, ~ is expanded to
// the home directory.
func (c *Config) ExpandPaths() error {
	paths := []*string{&c.Target, &c.Output, &c.TilesDir, &c.CacheDir}
	for _, p := range paths {
		if *p == "" {
			continue
		}
		expanded, err := ExpandPath(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
