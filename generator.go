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
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Generate runs the whole mosaic generation described by cfg: It loads the
// tiles from cfg.TilesDir, the target from cfg.Target, assembles the mosaic
// and writes it to cfg.Output.
//
// loader is used to load the tiles, if nil an FSTileLoader with the resizer
// of cfg is used. progress may be nil.
//
// Missing inputs are reported as *InputNotFoundError before any work is done.
// If anything fails no output file is written.
func Generate(ctx context.Context, cfg *Config, loader TileLoader, progress ProgressFunc) (*Mosaic, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	edge, edgeErr := cfg.EdgeMode()
	if edgeErr != nil {
		return nil, edgeErr
	}
	if err := requireFile(cfg.Target, "Target image"); err != nil {
		return nil, err
	}
	paths, listErr := ListTileFiles(cfg.TilesDir, nil)
	if listErr != nil {
		return nil, listErr
	}
	if len(paths) == 0 {
		return nil, ErrEmptyLibrary
	}

	resizer := cfg.Resizer()
	if loader == nil {
		loader = NewFSTileLoader(resizer)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = TimeSeed()
	}
	runLog := log.WithFields(log.Fields{
		"run":    uuid.New().String(),
		"target": cfg.Target,
		"tiles":  len(paths),
	})
	runLog.WithFields(log.Fields{
		"cellWidth":  cfg.CellWidth,
		"cellHeight": cfg.CellHeight,
		"candidates": cfg.Candidates,
		"seed":       seed,
		"resizer":    ResizerName(resizer),
	}).Info("Starting mosaic generation")

	start := time.Now()
	lib, libErr := LoadTileLibrary(ctx, paths, cfg.CellWidth, cfg.CellHeight, LibraryOptions{
		Loader:      loader,
		NumRoutines: cfg.NumRoutines,
		Progress:    progress,
	})
	if libErr != nil {
		return nil, libErr
	}
	runLog.WithField("took", time.Since(start)).Info("Tile library loaded")

	target, targetErr := LoadImage(cfg.Target)
	if targetErr != nil {
		return nil, &TargetImageError{Path: cfg.Target, Err: targetErr}
	}

	start = time.Now()
	assembler := &Assembler{
		CellWidth:   cfg.CellWidth,
		CellHeight:  cfg.CellHeight,
		Candidates:  cfg.Candidates,
		NumRoutines: cfg.NumRoutines,
		Seed:        seed,
		Resizer:     resizer,
		Edge:        edge,
		Progress:    progress,
	}
	mosaic, assembleErr := assembler.Assemble(ctx, target, lib)
	if assembleErr != nil {
		return nil, assembleErr
	}
	bounds := mosaic.Canvas.Bounds()
	runLog.WithFields(log.Fields{
		"took":   time.Since(start),
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	}).Info("Mosaic assembled")

	if saveErr := SaveImage(cfg.Output, mosaic.Canvas, cfg.JPGQuality); saveErr != nil {
		return nil, saveErr
	}
	runLog.WithField("output", cfg.Output).Info("Mosaic saved")
	return mosaic, nil
}
