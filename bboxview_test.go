package bboxview

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/rmarques/bboxview/internal/config"
	"github.com/rmarques/bboxview/pkg/imageio"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{64, 64, 64, 255})
		}
	}

	return img
}

func TestNew(t *testing.T) {
	viewer := New()
	if viewer == nil {
		t.Fatal("New() returned nil")
	}

	if viewer.pipeline == nil {
		t.Error("pipeline component is nil")
	}

	if viewer.cfg == nil {
		t.Error("config is nil")
	}
}

func TestNewWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Render.StrokeWidth = 4
	cfg.Render.ShowLegend = false

	viewer := NewWithConfig(cfg)
	if viewer == nil {
		t.Fatal("NewWithConfig() returned nil")
	}

	if viewer.cfg.Render.StrokeWidth != 4 {
		t.Errorf("Expected stroke width 4, got %d", viewer.cfg.Render.StrokeWidth)
	}
}

func TestAnnotateEmptyLabels(t *testing.T) {
	viewer := New()
	img := createTestImage(80, 80)

	out, warnings := viewer.Annotate(img, "")

	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if !bytes.Equal(out.Pix, imaging.Clone(img).Pix) {
		t.Error("Annotating with empty labels must not change pixels")
	}
}

func TestAnnotateFile(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.png")
	lblPath := filepath.Join(dir, "photo.txt")

	if err := imageio.Save(createTestImage(100, 100), imgPath, imageio.Options{Format: "png"}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lblPath, []byte("0 0.5 0.5 0.2 0.2\nshort"), 0644); err != nil {
		t.Fatal(err)
	}

	viewer := New()
	out, warnings, err := viewer.AnnotateFile(imgPath, lblPath)
	if err != nil {
		t.Fatalf("AnnotateFile failed: %v", err)
	}

	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning for the short line, got %d", len(warnings))
	}

	want := viewer.Pipeline().Palette().ColorFor(0)
	if got := out.NRGBAAt(50, 40); got != want {
		t.Errorf("Expected box edge in class color %v, got %v", want, got)
	}
}

func TestAnnotateFileMissingLabels(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.png")
	if err := imageio.Save(createTestImage(50, 50), imgPath, imageio.Options{Format: "png"}); err != nil {
		t.Fatal(err)
	}

	viewer := New()
	out, warnings, err := viewer.AnnotateFile(imgPath, filepath.Join(dir, "missing.txt"))
	if err != nil {
		t.Fatalf("Missing label file is not fatal: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if out.Bounds().Dx() != 50 {
		t.Errorf("Unexpected output bounds %v", out.Bounds())
	}
}

func TestAnnotateFileUnreadableImage(t *testing.T) {
	viewer := New()

	_, _, err := viewer.AnnotateFile("/does/not/exist.jpg", "/does/not/exist.txt")
	if err == nil {
		t.Error("Expected error for unreadable image")
	}
}

func TestAnnotateFileTo(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.png")
	outPath := filepath.Join(dir, "photo_annotated.jpg")

	if err := imageio.Save(createTestImage(60, 60), imgPath, imageio.Options{Format: "png"}); err != nil {
		t.Fatal(err)
	}

	viewer := New()
	if _, err := viewer.AnnotateFileTo(imgPath, filepath.Join(dir, "none.txt"), outPath); err != nil {
		t.Fatalf("AnnotateFileTo failed: %v", err)
	}

	saved, err := imageio.Load(outPath)
	if err != nil {
		t.Fatalf("Saved output could not be loaded: %v", err)
	}
	if saved.Bounds().Dx() != 60 || saved.Bounds().Dy() != 60 {
		t.Errorf("Expected 60x60 output, got %v", saved.Bounds())
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %q, want %q", GetVersion(), Version)
	}
}
