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

// Package tilecache stores resized tiles on disk, so that the next run with
// the same tiles and cell size doesn't have to decode and resize them again.
//
// Tiles are stored in a pebble database, the pixels are compressed with zstd.
package tilecache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/cockroachdb/pebble"
	"github.com/klauspost/compress/zstd"
)

// ErrCorruptEntry is returned if a stored tile can't be decoded.
var ErrCorruptEntry = errors.New("Corrupt tile cache entry")

// headerSize is the size of the width and height stored in front of the
// compressed pixels.
const headerSize = 8

// Cache is a persistent store of resized tiles, it is safe for concurrent
// use.
type Cache struct {
	db      *pebble.DB
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// Open opens (or creates) the cache in dir.
func Open(dir string) (*Cache, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("Can't open tile cache: %w", err)
	}
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("Can't create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		db.Close()
		encoder.Close()
		return nil, fmt.Errorf("Can't create zstd decoder: %w", err)
	}
	return &Cache{db: db, encoder: encoder, decoder: decoder}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	c.encoder.Close()
	c.decoder.Close()
	return c.db.Close()
}

// Get returns the tile stored under key. If there is no such tile
// (nil, false, nil) is returned.
func (c *Cache) Get(key []byte) (*image.RGBA, bool, error) {
	value, closer, err := c.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()
	img, decodeErr := c.decode(value)
	if decodeErr != nil {
		return nil, false, decodeErr
	}
	return img, true, nil
}

// Put stores img under key.
func (c *Cache) Put(key []byte, img *image.RGBA) error {
	return c.db.Set(key, c.encode(img), pebble.Sync)
}

// Delete removes the entry stored under key, deleting a missing key is not
// an error.
func (c *Cache) Delete(key []byte) error {
	return c.db.Delete(key, pebble.Sync)
}

func (c *Cache) encode(img *image.RGBA) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, 4*width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		offset := img.PixOffset(bounds.Min.X, y)
		pix = append(pix, img.Pix[offset:offset+4*width]...)
	}
	res := make([]byte, headerSize, headerSize+len(pix)/2)
	binary.BigEndian.PutUint32(res[0:4], uint32(width))
	binary.BigEndian.PutUint32(res[4:8], uint32(height))
	return c.encoder.EncodeAll(pix, res)
}

// decode copies the pixels out of value, value belongs to pebble and is only
// valid until the closer is closed.
func (c *Cache) decode(value []byte) (*image.RGBA, error) {
	if len(value) < headerSize {
		return nil, ErrCorruptEntry
	}
	width := int(binary.BigEndian.Uint32(value[0:4]))
	height := int(binary.BigEndian.Uint32(value[4:8]))
	pix, err := c.decoder.DecodeAll(value[headerSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	if width <= 0 || height <= 0 || len(pix) != 4*width*height {
		return nil, ErrCorruptEntry
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
