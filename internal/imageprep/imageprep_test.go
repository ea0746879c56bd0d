package imageprep

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeImage(t *testing.T, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 40, B: 40, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		w, h         int
		maxDimension int
		wantW, wantH int
		resized      bool
		wantFormat   string
		wantFilename string
	}{
		{"small png untouched", "small.png", 300, 200, 2048, 300, 200, false, "png", "small.png"},
		{"wide png fitted", "wide.png", 4000, 1000, 2000, 2000, 500, true, "png", "wide.png"},
		{"tall jpeg fitted", "tall.jpg", 600, 1200, 300, 150, 300, true, "jpeg", "tall.jpg"},
		{"default limit", "big.png", 4096, 100, 0, 2048, 50, true, "png", "big.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.file, tt.w, tt.h)

			up, err := Prepare(path, tt.maxDimension)
			if err != nil {
				t.Fatalf("Prepare() unexpected error: %v", err)
			}

			if up.Width != tt.wantW || up.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", up.Width, up.Height, tt.wantW, tt.wantH)
			}
			if up.Resized != tt.resized {
				t.Errorf("Resized = %v, want %v", up.Resized, tt.resized)
			}
			if up.Filename != tt.wantFilename {
				t.Errorf("Filename = %q, want %q", up.Filename, tt.wantFilename)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(up.Data))
			if err != nil {
				t.Fatalf("encoded data does not decode: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if cfg.Width != tt.wantW || cfg.Height != tt.wantH {
				t.Errorf("encoded size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPrepare_UnknownExtensionBecomesPNG(t *testing.T) {
	src := writeImage(t, "scan.png", 40, 20)
	path := filepath.Join(t.TempDir(), "scan.img")
	data, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	up, err := Prepare(path, 100)
	if err != nil {
		t.Fatalf("Prepare() unexpected error: %v", err)
	}
	if up.Filename != "scan.png" {
		t.Errorf("Filename = %q, want scan.png", up.Filename)
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(up.Data)); err != nil || format != "png" {
		t.Errorf("format = %q (%v), want png", format, err)
	}
}

func TestPrepare_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Prepare(filepath.Join(dir, "missing.png"), 100); err == nil {
		t.Error("Prepare() on missing file should have returned error")
	}

	notImage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("plain text"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Prepare(notImage, 100); err == nil {
		t.Error("Prepare() on non-image should have returned error")
	}
}
