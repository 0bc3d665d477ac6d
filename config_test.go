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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nfnt/resize"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.CellWidth != 15 || config.CellHeight != 15 {
		t.Errorf("expected default cell size 15x15, got %dx%d", config.CellWidth, config.CellHeight)
	}
	if config.Candidates != 5 {
		t.Errorf("expected 5 candidates, got %d", config.Candidates)
	}
	if config.Output != "mosaic.png" {
		t.Errorf("expected default output mosaic.png, got %s", config.Output)
	}
	if config.NumRoutines != DefaultNumRoutines() {
		t.Errorf("expected %d routines, got %d", DefaultNumRoutines(), config.NumRoutines)
	}
	if mode, err := config.EdgeMode(); err != nil || mode != EdgeClip {
		t.Errorf("expected EdgeClip, got %v (%v)", mode, err)
	}
	resizer, ok := config.Resizer().(NfntResizer)
	if !ok || resizer.InterP != resize.MitchellNetravali {
		t.Errorf("expected mitchell resizer, got %v", config.Resizer())
	}
}

func TestConfigValidation(t *testing.T) {
	valid := func() *Config {
		config := DefaultConfig()
		config.Target = "target.png"
		return config
	}
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing target", func(c *Config) { c.Target = "" }, true},
		{"missing output", func(c *Config) { c.Output = "" }, true},
		{"missing tiles", func(c *Config) { c.TilesDir = "" }, true},
		{"zero cell width", func(c *Config) { c.CellWidth = 0 }, true},
		{"negative cell height", func(c *Config) { c.CellHeight = -1 }, true},
		{"zero candidates", func(c *Config) { c.Candidates = 0 }, true},
		{"jpeg quality too high", func(c *Config) { c.JPGQuality = 101 }, true},
		{"invalid edge", func(c *Config) { c.Edge = "wrap" }, true},
		{"fit edge", func(c *Config) { c.Edge = "fit" }, false},
		{"invalid log level", func(c *Config) { c.LogLevel = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromNonExistentFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if !reflect.DeepEqual(config, DefaultConfig()) {
		t.Errorf("expected default config, got %+v", config)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"target": "in.jpg", "cell_width": 30, "edge": "fit", "seed": 12}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Target != "in.jpg" || config.CellWidth != 30 || config.Edge != "fit" || config.Seed != 12 {
		t.Errorf("values from file not applied: %+v", config)
	}
	if config.CellHeight != 15 || config.Candidates != 5 {
		t.Errorf("defaults not kept: %+v", config)
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{invalid"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestLoadAndSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	config := DefaultConfig()
	config.Target = "target.png"
	config.CacheDir = "/tmp/cache"
	config.Interpolation = 5
	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(config, loaded) {
		t.Errorf("expected %+v, got %+v", config, loaded)
	}
}

func TestConfigExpandPaths(t *testing.T) {
	config := DefaultConfig()
	config.Target = "target.png"
	if err := config.ExpandPaths(); err != nil {
		t.Fatalf("ExpandPaths failed: %v", err)
	}
	for _, p := range []string{config.Target, config.Output, config.TilesDir} {
		if !filepath.IsAbs(p) {
			t.Errorf("expected absolute path, got %s", p)
		}
	}
	if config.CacheDir != "" {
		t.Errorf("expected empty cache dir to stay empty, got %s", config.CacheDir)
	}
}
