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
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mosaic.png")
	img := createNoiseImage(31, 17, 9)
	if err := SaveImage(path, img, 100); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}
	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Fatalf("expected bounds %v, got %v", img.Bounds(), loaded.Bounds())
	}
	for y := 0; y < 17; y++ {
		for x := 0; x < 31; x++ {
			want := ConvertRGB(img.At(x, y))
			if got := ConvertRGB(loaded.At(x, y)); got != want {
				t.Fatalf("pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the output file in %s, got %d entries", dir, len(entries))
	}
}

func TestSaveImageFormats(t *testing.T) {
	dir := t.TempDir()
	img := createNoiseImage(8, 8, 1)
	for _, name := range []string{"a.jpg", "b.jpeg", "c.gif", "d.tif", "e.bmp"} {
		path := filepath.Join(dir, name)
		if err := SaveImage(path, img, 90); err != nil {
			t.Errorf("%s: SaveImage failed: %v", name, err)
			continue
		}
		if _, err := LoadImage(path); err != nil {
			t.Errorf("%s: can't load saved image: %v", name, err)
		}
	}
}

func TestSaveImageErrors(t *testing.T) {
	dir := t.TempDir()
	img := createSolidImage(4, 4, RGB{})
	tests := []struct {
		name string
		path string
	}{
		{"unknown extension", filepath.Join(dir, "mosaic.xyz")},
		{"missing directory", filepath.Join(dir, "missing", "mosaic.png")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SaveImage(tt.path, img, 100)
			var encodeErr *EncodeError
			if !errors.As(err, &encodeErr) {
				t.Fatalf("expected EncodeError, got %v", err)
			}
			if encodeErr.Path != tt.path {
				t.Errorf("expected path %s in error, got %s", tt.path, encodeErr.Path)
			}
			if _, statErr := os.Stat(tt.path); !os.IsNotExist(statErr) {
				t.Errorf("expected no file at %s", tt.path)
			}
		})
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files left in %s, got %d", dir, len(entries))
	}
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadImage(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("no png"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := LoadImage(broken); err == nil {
		t.Error("expected error for broken file")
	}
}
