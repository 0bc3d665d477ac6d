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
	"fmt"
)

var (
	// ErrInputNotFound is wrapped by InputNotFoundError, use errors.Is to test
	// for it.
	ErrInputNotFound = errors.New("Input not found")

	// ErrEmptyLibrary is returned if there are no tiles to build a mosaic from.
	ErrEmptyLibrary = errors.New("Tile library is empty")

	// ErrInvalidK is returned by color index queries with k < 1.
	ErrInvalidK = errors.New("Number of requested neighbours must be at least 1")

	// ErrInvalidCellSize is returned if a cell (tile) dimension is not
	// positive.
	ErrInvalidCellSize = errors.New("Cell width and height must be positive")
)

// InputNotFoundError is returned before any processing starts if the target
// image or the tile directory does not exist.
type InputNotFoundError struct {
	// Path is the path that was looked up.
	Path string
	// Kind describes what was expected at Path, for example "target image".
	Kind string
}

func (err *InputNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: \"%s\"", err.Kind, err.Path)
}

func (err *InputNotFoundError) Unwrap() error {
	return ErrInputNotFound
}

// TileDecodeError is returned if a file of the tile library can't be decoded.
// A single broken tile fails the whole run, otherwise the library would shrink
// and all following tile ids would shift.
type TileDecodeError struct {
	Path string
	Err  error
}

func (err *TileDecodeError) Error() string {
	return fmt.Sprintf("Can't decode tile \"%s\": %v", err.Path, err.Err)
}

func (err *TileDecodeError) Unwrap() error {
	return err.Err
}

// TargetImageError is returned if the target image can't be read.
type TargetImageError struct {
	Path string
	Err  error
}

func (err *TargetImageError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("Invalid target image: %v", err.Err)
	}
	return fmt.Sprintf("Can't read target image \"%s\": %v", err.Path, err.Err)
}

func (err *TargetImageError) Unwrap() error {
	return err.Err
}

// EncodeError is returned if the mosaic can't be written to its output path.
type EncodeError struct {
	Path string
	Err  error
}

func (err *EncodeError) Error() string {
	return fmt.Sprintf("Can't write mosaic to \"%s\": %v", err.Path, err.Err)
}

func (err *EncodeError) Unwrap() error {
	return err.Err
}
