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
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
)

// Tile is a resized image of the library together with its average color.
// Tiles are never modified after the library is loaded.
type Tile struct {
	// ID is the position of the tile in the library.
	ID int
	// Path is the file the tile was created from.
	Path string
	// Image has the bounds (0, 0, width, height) of the library.
	Image *image.RGBA
	// Average is the average color of Image.
	Average AverageColor
}

// TileLibrary is an ordered collection of tiles, all of the same size.
// The index of a tile is its identifier in all other components, for example
// in a ColorIndex or an AssignmentMap.
type TileLibrary struct {
	Width, Height int
	Tiles         []*Tile
}

// Len returns the number of tiles.
func (lib *TileLibrary) Len() int {
	return len(lib.Tiles)
}

// Tile returns the tile with id i.
func (lib *TileLibrary) Tile(i int) *Tile {
	return lib.Tiles[i]
}

// AverageColors returns the average colors of all tiles, the color at
// position i belongs to tile i.
func (lib *TileLibrary) AverageColors() []AverageColor {
	res := make([]AverageColor, len(lib.Tiles))
	for i, tile := range lib.Tiles {
		res[i] = tile.Average
	}
	return res
}

// LibraryOptions control how a library is loaded, the zero value is valid.
type LibraryOptions struct {
	// Loader decodes and resizes the tiles, if nil an FSTileLoader with
	// Resizer is used.
	Loader TileLoader
	// Resizer is only used if Loader is nil.
	Resizer ImageResizer
	// NumRoutines is the number of concurrent loads, ≤ 0 means
	// DefaultNumRoutines.
	NumRoutines int
	// Progress is informed in the phases PhaseImport and PhaseAverage, may
	// be nil.
	Progress ProgressFunc
}

// LoadTileLibrary loads all images in paths, resizes them to width x height
// and computes their average colors. Tile i is created from paths[i].
//
// If paths is empty ErrEmptyLibrary is returned. If any file can't be loaded
// the whole load fails with a *TileDecodeError; if several files fail it
// describes the one with the smallest index.
func LoadTileLibrary(ctx context.Context, paths []string, width, height int,
	opts LibraryOptions) (*TileLibrary, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyLibrary
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidCellSize
	}
	loader := opts.Loader
	if loader == nil {
		loader = NewFSTileLoader(opts.Resizer)
	}
	n := len(paths)
	tiles := make([]*Tile, n)

	importProgress := newProgressCounter(PhaseImport, n, opts.Progress)
	loadErr := runJobs(ctx, n, opts.NumRoutines, func(i int) error {
		img, imgErr := loader.LoadTile(paths[i], width, height)
		if imgErr != nil {
			return &TileDecodeError{Path: paths[i], Err: imgErr}
		}
		tiles[i] = &Tile{ID: i, Path: paths[i], Image: img}
		return nil
	}, nil, importProgress)
	if loadErr != nil {
		return nil, loadErr
	}
	log.WithFields(log.Fields{
		"tiles":  n,
		"width":  width,
		"height": height,
	}).Debug("Tiles loaded")

	averageProgress := newProgressCounter(PhaseAverage, n, opts.Progress)
	avgErr := runJobs(ctx, n, opts.NumRoutines, func(i int) error {
		tiles[i].Average = ComputeAverageColor(tiles[i].Image)
		return nil
	}, nil, averageProgress)
	if avgErr != nil {
		return nil, avgErr
	}
	return &TileLibrary{Width: width, Height: height, Tiles: tiles}, nil
}

// NewTileLibrary creates a library from images that are already of the
// requested size, it's useful if tiles don't come from files.
// The images are copied into opaque RGBA images, each must have size
// width x height.
func NewTileLibrary(images []image.Image, width, height int) (*TileLibrary, error) {
	if len(images) == 0 {
		return nil, ErrEmptyLibrary
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidCellSize
	}
	tiles := make([]*Tile, len(images))
	for i, img := range images {
		bounds := img.Bounds()
		if bounds.Dx() != width || bounds.Dy() != height {
			return nil, fmt.Errorf("Tile %d has size %dx%d, expected %dx%d: %w",
				i, bounds.Dx(), bounds.Dy(), width, height, ErrInvalidCellSize)
		}
		rgba := ToOpaqueRGBA(img)
		tiles[i] = &Tile{ID: i, Image: rgba, Average: ComputeAverageColor(rgba)}
	}
	return &TileLibrary{Width: width, Height: height, Tiles: tiles}, nil
}
