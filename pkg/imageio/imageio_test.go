package imageio

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{uint8(x % 256), uint8(y % 256), 64, 255})
		}
	}
	return img
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	img := createTestImage(64, 48)

	for _, format := range []string{"png", "jpg", "webp"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "test."+format)
			if err := Save(img, path, Options{Format: format, Quality: 90}); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			b := loaded.Bounds()
			if b.Dx() != 64 || b.Dy() != 48 {
				t.Errorf("Expected 64x48, got %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestSaveFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")

	if err := Save(createTestImage(8, 8), path, Options{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load of extension-derived save failed: %v", err)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	err := Save(createTestImage(8, 8), filepath.Join(t.TempDir(), "test.xyz"), Options{})
	if err == nil {
		t.Error("Expected error for unsupported output format")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/image.png")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
	if loadErr.Path != "/nonexistent/image.png" {
		t.Errorf("LoadError must carry the originating path, got %q", loadErr.Path)
	}
}

func TestLoadUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for undecodable file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
}

func TestFitWithinDownscales(t *testing.T) {
	img := createTestImage(400, 200)

	fitted := FitWithin(img, 100, 100)

	b := fitted.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Errorf("Expected 100x50, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestFitWithinNeverUpscales(t *testing.T) {
	img := createTestImage(40, 30)

	fitted := FitWithin(img, 100, 100)

	b := fitted.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("Expected unchanged 40x30, got %dx%d", b.Dx(), b.Dy())
	}
}
