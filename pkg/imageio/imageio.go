// Package imageio loads and saves the rasters the annotation pipeline
// works on. It supports jpg, png, bmp, tif/tiff, gif and webp inputs and
// jpg, png and webp outputs.
package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadError is the fatal error class of the pipeline: the source image
// could not be read or decoded. It always carries the originating path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the image at path. On failure it returns a
// *LoadError wrapping the cause.
func Load(path string) (image.Image, error) {
	// imaging.Open handles the decoders registered above.
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode for files with misleading headers.
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	if _, err := f.Seek(0, 0); err == nil {
		if img, _, err := image.Decode(f); err == nil {
			return img, nil
		}
	}
	return nil, &LoadError{Path: path, Err: fmt.Errorf("unknown or unsupported image format")}
}

// Options control how Save encodes the output raster.
type Options struct {
	Format   string // jpg, png or webp; empty derives from the path extension
	Quality  int    // JPEG/WebP quality 1-100
	Lossless bool   // WebP lossless mode
}

// Save persists the annotated raster to path.
func Save(img image.Image, path string, opts Options) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	quality := opts.Quality
	if quality < 1 || quality > 100 {
		quality = 90
	}

	switch format {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return webp.Encode(f, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(quality)})
	case "png":
		return imaging.Save(img, path)
	case "jpg", "jpeg":
		return imaging.Save(img, path, imaging.JPEGQuality(quality))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// FitWithin downscales img to fit inside maxW x maxH, preserving the
// aspect ratio. Images already within the limits are returned unchanged;
// it never upscales.
func FitWithin(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return img
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}
