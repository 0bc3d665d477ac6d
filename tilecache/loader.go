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

package tilecache

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	mosaic "github.com/mahmoudjd/mosaic-generator"
	log "github.com/sirupsen/logrus"
)

// Loader is a mosaic.TileLoader that looks up tiles in a Cache first and
// uses Fallback if the tile is not cached (or the entry is broken). Tiles
// loaded by Fallback are added to the cache.
//
// The cache never changes the result: errors of the cache are logged and
// Fallback is used instead.
type Loader struct {
	Cache    *Cache
	Fallback mosaic.TileLoader
	// Filter identifies the resize filter of Fallback, tiles scaled with a
	// different filter are stored under different keys.
	Filter string
}

// NewLoader returns a new cached loader.
func NewLoader(cache *Cache, fallback mosaic.TileLoader, filter string) *Loader {
	return &Loader{Cache: cache, Fallback: fallback, Filter: filter}
}

// Key returns the cache key of the file in path resized to width x height.
// The key contains the size and modification time of the file, so a changed
// file gets a new key.
func (l *Loader) Key(path string, width, height int) ([]byte, error) {
	abs, absErr := filepath.Abs(path)
	if absErr != nil {
		return nil, absErr
	}
	fi, statErr := os.Stat(abs)
	if statErr != nil {
		return nil, statErr
	}
	key := fmt.Sprintf("tile:%s:%d:%d:%dx%d:%s",
		abs, fi.Size(), fi.ModTime().UnixNano(), width, height, l.Filter)
	return []byte(key), nil
}

// LoadTile implements mosaic.TileLoader.
func (l *Loader) LoadTile(path string, width, height int) (*image.RGBA, error) {
	key, keyErr := l.Key(path, width, height)
	if keyErr != nil {
		// let the fallback report the problem with the file
		return l.Fallback.LoadTile(path, width, height)
	}
	img, found, getErr := l.Cache.Get(key)
	switch {
	case getErr != nil:
		log.WithFields(log.Fields{
			log.ErrorKey: getErr,
			"path":       path,
		}).Warn("Can't read tile from cache, loading it again")
	case found:
		if bounds := img.Bounds(); bounds.Dx() == width && bounds.Dy() == height {
			return img, nil
		}
		log.WithField("path", path).Warn("Cached tile has wrong size, loading it again")
	}
	img, loadErr := l.Fallback.LoadTile(path, width, height)
	if loadErr != nil {
		return nil, loadErr
	}
	if putErr := l.Cache.Put(key, img); putErr != nil {
		log.WithFields(log.Fields{
			log.ErrorKey: putErr,
			"path":       path,
		}).Warn("Can't add tile to cache")
	}
	return img, nil
}
