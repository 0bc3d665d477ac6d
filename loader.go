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
	"fmt"
	"image"
)

// TileLoader decodes the image stored in path and resizes it to exactly
// width x height. The returned image must have bounds (0, 0, width, height)
// and must not be modified by the loader afterwards.
//
// Loaders are called concurrently.
type TileLoader interface {
	LoadTile(path string, width, height int) (*image.RGBA, error)
}

// FSTileLoader loads tiles from the file system and resizes them with Resizer.
type FSTileLoader struct {
	// Resizer is used to scale tiles, if nil DefaultResizer is used.
	Resizer ImageResizer
}

// NewFSTileLoader returns a new loader given the resizer.
func NewFSTileLoader(resizer ImageResizer) FSTileLoader {
	return FSTileLoader{Resizer: resizer}
}

// LoadTile implements TileLoader.
func (loader FSTileLoader) LoadTile(path string, width, height int) (*image.RGBA, error) {
	img, decodeErr := LoadImage(path)
	if decodeErr != nil {
		return nil, decodeErr
	}
	return ResizeRGBA(loader.Resizer, width, height, img), nil
}

// ResizerName returns a name for resizer that identifies its output, it's
// used as part of cache keys. Resizers that implement fmt.Stringer use their
// String method.
func ResizerName(resizer ImageResizer) string {
	if resizer == nil {
		resizer = DefaultResizer
	}
	if stringer, ok := resizer.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%T", resizer)
}
