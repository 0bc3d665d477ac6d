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
	"sort"

	homedir "github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading ~ to the home directory of the user and
// returns the absolute version of path.
func ExpandPath(path string) (string, error) {
	res, pathErr := homedir.Expand(path)
	if pathErr != nil {
		return "", pathErr
	}
	return filepath.Abs(res)
}

// ListTileFiles returns the paths of all regular files in dir (not recursive),
// sorted by name. The position of a path in the result is the id of the tile
// created from it.
//
// filter can be used to accept only certain file extensions, nil accepts all
// files. Without a filter every file in the directory is expected to be an
// image and a non-image file makes loading the library fail.
//
// If dir doesn't exist or is not a directory an InputNotFoundError is
// returned.
func ListTileFiles(dir string, filter SupportedImageFunc) ([]string, error) {
	root, absErr := filepath.Abs(dir)
	if absErr != nil {
		return nil, absErr
	}
	if fi, statErr := os.Stat(root); statErr != nil || !fi.IsDir() {
		return nil, &InputNotFoundError{Path: dir, Kind: "Tiles directory"}
	}
	entries, readErr := os.ReadDir(root)
	if readErr != nil {
		return nil, readErr
	}
	res := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filter != nil && !filter(filepath.Ext(entry.Name())) {
			continue
		}
		res = append(res, filepath.Join(root, entry.Name()))
	}
	sort.Strings(res)
	return res, nil
}

// requireFile returns an InputNotFoundError if path is not an existing
// regular file.
func requireFile(path, kind string) error {
	fi, statErr := os.Stat(path)
	if statErr != nil || fi.IsDir() {
		return &InputNotFoundError{Path: path, Kind: kind}
	}
	return nil
}
