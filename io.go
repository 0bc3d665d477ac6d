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
	"errors"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// LoadImage decodes the image stored in path. The EXIF orientation of jpeg
// files is applied.
func LoadImage(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// SaveImage encodes img and writes it to path, the format is taken from the
// file extension (png, jpg, gif, tif or bmp). jpgQuality is only used for
// jpeg files.
//
// The image is written to a temporary file next to path which is renamed
// on success, so either the complete image is written or no file is created.
// All errors are of type *EncodeError.
func SaveImage(path string, img image.Image, jpgQuality int) error {
	format, formatErr := imaging.FormatFromFilename(path)
	if formatErr != nil {
		return &EncodeError{Path: path, Err: formatErr}
	}
	dir := filepath.Dir(path)
	tmp, tmpErr := os.CreateTemp(dir, ".mosaic-*"+filepath.Ext(path))
	if tmpErr != nil {
		return &EncodeError{Path: path, Err: tmpErr}
	}
	tmpName := tmp.Name()
	encErr := imaging.Encode(tmp, img, format, imaging.JPEGQuality(jpgQuality))
	chmodErr := tmp.Chmod(0644)
	closeErr := tmp.Close()
	if err := errors.Join(encErr, chmodErr, closeErr); err != nil {
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}
	if renameErr := os.Rename(tmpName, path); renameErr != nil {
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: renameErr}
	}
	return nil
}
