// Package mosaic generates photo mosaics: It takes a target image and a
// library of tile images and returns a composition of the target out of the
// tiles.
//
// Each tile is resized to the cell size and summarized by its average color.
// The target is scaled down to one pixel per cell and each cell is replaced by
// one of the tiles with the nearest average color (euclidean distance in RGB
// space). To avoid large areas of the same tile a cell picks randomly among its
// k nearest tiles, the random choice is deterministic given a seed.
//
// It ships with an executable program (cmd/mosaic) and an optional on-disk
// cache for resized tiles (package tilecache).
package mosaic
