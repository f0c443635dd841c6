// Package bboxview annotates images with YOLO-format bounding box labels
// for visual inspection of object-detection datasets.
//
// Each label line is `class_id cx cy w h`; the geometry is either
// normalized to the image dimensions or in absolute pixels, and the
// library detects which per label file. Boxes are drawn with per-class
// stable colors and a small legend identifying the class.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/rmarques/bboxview"
//	)
//
//	func main() {
//		viewer := bboxview.New()
//
//		// Annotate one image with its label file and save the result.
//		warnings, err := viewer.AnnotateFileTo("img/0001.jpg", "labels/0001.txt", "out/0001.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, w := range warnings {
//			log.Printf("labels/0001.txt: %s", w)
//		}
//	}
//
// The package consists of four main components:
//
// 1. Label (pkg/label): parses label lines and resolves coordinate units
// 2. Palette (pkg/palette): assigns session-stable colors to classes
// 3. Render (pkg/render): draws box outlines and legends onto a raster
// 4. Pipeline (pkg/pipeline): orchestrates one (image, labels) annotation
//
// Image loading and saving live in pkg/imageio; decode failures are the
// only fatal error, everything wrong inside a label file degrades to
// warnings and a best-effort rendering of the valid records.
package bboxview

import (
	"image"
	"os"

	"github.com/rmarques/bboxview/internal/config"
	"github.com/rmarques/bboxview/pkg/imageio"
	"github.com/rmarques/bboxview/pkg/label"
	"github.com/rmarques/bboxview/pkg/pipeline"
)

// Version of the bboxview library
const Version = "1.0.0"

// Viewer provides a high-level interface for annotating labeled images.
// It keeps one color session, so a class keeps its color across all
// images annotated through the same Viewer.
type Viewer struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
}

// New creates a Viewer with default configuration.
func New() *Viewer {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a Viewer with custom configuration.
func NewWithConfig(cfg *config.Config) *Viewer {
	return &Viewer{
		cfg: cfg,
		pipeline: pipeline.NewWithOptions(pipeline.Options{
			StrokeWidth: cfg.Render.StrokeWidth,
			ShowLegend:  cfg.Render.ShowLegend,
			LegendText:  cfg.Render.LegendText,
		}),
	}
}

// Pipeline exposes the underlying annotation pipeline.
func (v *Viewer) Pipeline() *pipeline.Pipeline { return v.pipeline }

// Annotate renders labelText onto a copy of img. The input raster is
// never modified.
func (v *Viewer) Annotate(img image.Image, labelText string) (*image.NRGBA, []label.Warning) {
	return v.pipeline.Annotate(img, labelText)
}

// AnnotateFile loads the image at imagePath, reads the label file at
// labelPath and returns the annotated raster. A missing or empty label
// file renders the untouched image; an unreadable image is an error.
func (v *Viewer) AnnotateFile(imagePath, labelPath string) (*image.NRGBA, []label.Warning, error) {
	img, err := imageio.Load(imagePath)
	if err != nil {
		return nil, nil, err
	}

	var text string
	if data, err := os.ReadFile(labelPath); err == nil {
		text = string(data)
	}

	out, warnings := v.pipeline.Annotate(img, text)
	return out, warnings, nil
}

// AnnotateFileTo annotates like AnnotateFile and saves the result to
// outPath using the configured output encoding.
func (v *Viewer) AnnotateFileTo(imagePath, labelPath, outPath string) ([]label.Warning, error) {
	out, warnings, err := v.AnnotateFile(imagePath, labelPath)
	if err != nil {
		return nil, err
	}

	err = imageio.Save(out, outPath, imageio.Options{
		Quality:  v.cfg.Output.Quality,
		Lossless: v.cfg.Output.Lossless,
	})
	if err != nil {
		return warnings, err
	}
	return warnings, nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
