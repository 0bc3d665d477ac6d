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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	// Since we're not in the mosaic package we have to import it
	mosaic "github.com/mahmoudjd/mosaic-generator"
	"github.com/mahmoudjd/mosaic-generator/tilecache"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	cfg, verbose, parseErr := parseArgs(os.Args[1:])
	if parseErr != nil {
		if parseErr == pflag.ErrHelp {
			os.Exit(0)
		}
		log.WithError(parseErr).Error("Invalid arguments")
		os.Exit(1)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, cfg); err != nil {
		log.WithError(err).Error("Mosaic generation failed")
		stop()
		os.Exit(1)
	}
}

// parseArgs reads the config file (if given with --config) and applies all
// flags that were set explicitly on top of it.
func parseArgs(args []string) (*mosaic.Config, bool, error) {
	flags := pflag.NewFlagSet("mosaic", pflag.ContinueOnError)
	defaults := mosaic.DefaultConfig()

	configPath := flags.String("config", "", "JSON config file, flags override its values")
	target := flags.StringP("input", "i", "", "Target image (required)")
	output := flags.StringP("output", "o", defaults.Output, "Output file, the format is taken from the extension")
	tiles := flags.StringP("tiles", "t", defaults.TilesDir, "Directory containing the tile images")
	x := flags.IntP("width", "x", defaults.CellWidth, "Width of a cell (tile) in pixels")
	y := flags.IntP("height", "y", defaults.CellHeight, "Height of a cell (tile) in pixels")
	candidates := flags.IntP("candidates", "k", defaults.Candidates, "Number of nearest tiles to choose from randomly")
	seed := flags.Int64("seed", defaults.Seed, "Seed of the random tile choice, 0 for a time based seed")
	routines := flags.Int("routines", defaults.NumRoutines, "Number of concurrent workers")
	interP := flags.Uint("interp", defaults.Interpolation,
		"Resize filter: 0 nearest, 1 bilinear, 2 bicubic, 3 mitchell, 4 lanczos2, 5 lanczos3")
	edge := flags.String("edge", defaults.Edge, "Border handling: clip keeps the target size, fit uses the grid size")
	jpgQuality := flags.Int("jpeg-quality", defaults.JPGQuality, "Quality of jpeg output (1 - 100)")
	cacheDir := flags.String("cache", defaults.CacheDir, "Directory of the tile cache, empty disables caching")
	verbose := flags.BoolP("verbose", "v", false, "Print debug output")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: mosaic -i <target> [options]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return nil, false, err
	}

	cfg := defaults
	if *configPath != "" {
		path, pathErr := mosaic.ExpandPath(*configPath)
		if pathErr != nil {
			return nil, false, pathErr
		}
		var loadErr error
		cfg, loadErr = mosaic.LoadConfig(path)
		if loadErr != nil {
			return nil, false, loadErr
		}
	}

	set := func(name string, apply func()) {
		if *configPath == "" || flags.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.Target = *target })
	set("output", func() { cfg.Output = *output })
	set("tiles", func() { cfg.TilesDir = *tiles })
	set("width", func() { cfg.CellWidth = *x })
	set("height", func() { cfg.CellHeight = *y })
	set("candidates", func() { cfg.Candidates = *candidates })
	set("seed", func() { cfg.Seed = *seed })
	set("routines", func() { cfg.NumRoutines = *routines })
	set("interp", func() { cfg.Interpolation = *interP })
	set("edge", func() { cfg.Edge = *edge })
	set("jpeg-quality", func() { cfg.JPGQuality = *jpgQuality })
	set("cache", func() { cfg.CacheDir = *cacheDir })

	if err := cfg.ExpandPaths(); err != nil {
		return nil, false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, *verbose, nil
}

func run(ctx context.Context, cfg *mosaic.Config) error {
	var loader mosaic.TileLoader
	if cfg.CacheDir != "" {
		cache, cacheErr := tilecache.Open(cfg.CacheDir)
		if cacheErr != nil {
			return cacheErr
		}
		defer func() {
			if closeErr := cache.Close(); closeErr != nil {
				log.WithError(closeErr).Warn("Can't close tile cache")
			}
		}()
		resizer := cfg.Resizer()
		loader = tilecache.NewLoader(cache, mosaic.NewFSTileLoader(resizer), mosaic.ResizerName(resizer))
		log.WithField("dir", cfg.CacheDir).Debug("Using tile cache")
	}
	_, err := mosaic.Generate(ctx, cfg, loader, mosaic.LoggerProgressFunc(10))
	return err
}
