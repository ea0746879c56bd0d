// Package imageprep bounds images before they are uploaded for text extraction.
package imageprep

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// DefaultMaxDimension is used when Prepare is given a non-positive limit.
const DefaultMaxDimension = 2048

// Upload is an image ready to be sent.
type Upload struct {
	Filename string
	Data     []byte
	Width    int
	Height   int
	// Resized reports whether the image was scaled down.
	Resized bool
}

// Prepare loads the image at path, applies its EXIF orientation and fits it
// within maxDimension x maxDimension, preserving the aspect ratio. The result
// is re-encoded in the source format; unknown formats become PNG.
func Prepare(path string, maxDimension int) (*Upload, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	b := img.Bounds()
	up := &Upload{Filename: filepath.Base(path), Width: b.Dx(), Height: b.Dy()}

	if up.Width > maxDimension || up.Height > maxDimension {
		fitted := imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
		img = fitted
		up.Width, up.Height = fitted.Bounds().Dx(), fitted.Bounds().Dy()
		up.Resized = true
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		format = imaging.PNG
		up.Filename = trimExt(up.Filename) + ".png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	up.Data = buf.Bytes()
	return up, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
