// Command bboxview draws YOLO bounding-box labels onto images for visual
// inspection. It annotates a single image/label pair or a whole directory
// of images paired with labels by identical base filename.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmarques/bboxview/internal/config"
	"github.com/rmarques/bboxview/internal/utils"
	"github.com/rmarques/bboxview/pkg/imageio"
	"github.com/rmarques/bboxview/pkg/label"
	"github.com/rmarques/bboxview/pkg/pipeline"
)

func main() {
	var imagePath, imageDir, labelPath, out string
	var namesPath, configPath string
	var ext string
	var quality, stroke int
	var lossless, legend, legendText bool

	flag.StringVar(&imagePath, "image", "", "input image path (single mode)")
	flag.StringVar(&imageDir, "images", "", "input image directory (batch mode)")
	flag.StringVar(&labelPath, "labels", "", "label file (single mode) or label directory (batch mode)")
	flag.StringVar(&out, "out", "", "output file (single mode) or directory (batch mode)")
	flag.StringVar(&namesPath, "names", "", "optional class names file, one name per line")
	flag.StringVar(&configPath, "config", "", "optional JSON config file")

	flag.StringVar(&ext, "ext", "", "output format: jpg|png|webp (default from config)")
	flag.IntVar(&quality, "quality", 0, "JPEG/WebP output quality 1-100 (default from config)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless output")
	flag.IntVar(&stroke, "stroke", 0, "box outline width in pixels (default from config)")
	flag.BoolVar(&legend, "legend", true, "draw class legends")
	flag.BoolVar(&legendText, "legend-text", true, "render legend text (false draws color chips only)")

	flag.Parse()

	if imagePath == "" && imageDir == "" {
		log.Fatalf("usage: %s -image input.jpg -labels input.txt [-out annotated.jpg] | -images dir -labels dir -out dir",
			filepath.Base(os.Args[0]))
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := loaded.Validate(); err != nil {
			log.Fatalf("invalid config: %v", err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if ext != "" {
		cfg.Output.DefaultFormat = strings.ToLower(ext)
	}
	if quality > 0 {
		cfg.Output.Quality = quality
	}
	if lossless {
		cfg.Output.Lossless = true
	}
	if stroke > 0 {
		cfg.Render.StrokeWidth = stroke
	}
	cfg.Render.ShowLegend = legend
	cfg.Render.LegendText = legendText

	var classNames map[int]string
	if namesPath != "" {
		names, err := loadClassNames(namesPath)
		if err != nil {
			log.Fatalf("failed to load class names: %v", err)
		}
		classNames = names
	}

	p := pipeline.NewWithOptions(pipeline.Options{
		StrokeWidth: cfg.Render.StrokeWidth,
		ShowLegend:  cfg.Render.ShowLegend,
		LegendText:  cfg.Render.LegendText,
		ClassNames:  classNames,
	})

	if imagePath != "" {
		if labelPath == "" {
			log.Fatal("single mode requires -labels with the label file path")
		}
		if out == "" {
			out = utils.GenerateOutputFilename(imagePath, ".", "_annotated", cfg.Output.DefaultFormat)
		}
		if err := annotateOne(p, cfg, imagePath, labelPath, out); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", out)
		return
	}

	// Batch mode over an image directory.
	if labelPath == "" || out == "" {
		log.Fatal("batch mode requires -labels and -out directories")
	}
	if err := utils.EnsureDir(out); err != nil {
		log.Fatal(err)
	}

	images, err := utils.ListImageFiles(imageDir, cfg.Loader.SupportedFormats)
	if err != nil {
		log.Fatal(err)
	}
	if len(images) == 0 {
		log.Fatalf("no images found in %s", imageDir)
	}

	succeeded := 0
	for _, img := range images {
		lbl := utils.LabelPathFor(img, labelPath, cfg.Loader.LabelExtension)
		if !utils.FileExists(lbl) {
			log.Printf("no label file for %s, rendering unannotated", filepath.Base(img))
		}
		outPath := utils.GenerateOutputFilename(img, out, cfg.Output.Suffix, cfg.Output.DefaultFormat)

		if err := annotateOne(p, cfg, img, lbl, outPath); err != nil {
			// Decode failures are fatal per image only; keep going.
			log.Printf("skipping %s: %v", filepath.Base(img), err)
			continue
		}
		succeeded++
		log.Printf("wrote %s", outPath)
	}

	if succeeded == 0 {
		log.Fatal("no images could be annotated")
	}
	log.Printf("annotated %d/%d images", succeeded, len(images))
}

// annotateOne runs the pipeline for one image/label pair and saves the
// result. Label warnings go to stderr; only image errors are returned.
func annotateOne(p *pipeline.Pipeline, cfg *config.Config, imagePath, labelPath, outPath string) error {
	img, err := imageio.Load(imagePath)
	if err != nil {
		return err
	}

	var text string
	if data, err := os.ReadFile(labelPath); err == nil {
		text = string(data)
	}

	annotated, warnings := p.Annotate(img, text)
	reportWarnings(labelPath, warnings)

	return imageio.Save(annotated, outPath, imageio.Options{
		Format:   cfg.Output.DefaultFormat,
		Quality:  cfg.Output.Quality,
		Lossless: cfg.Output.Lossless,
	})
}

func reportWarnings(labelPath string, warnings []label.Warning) {
	for _, w := range warnings {
		log.Printf("warning: %s: %s", labelPath, w)
	}
}

// loadClassNames reads a YOLO names file: one class name per line, the
// line number (from zero) is the class id. Blank lines keep their index.
func loadClassNames(path string) (map[int]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := make(map[int]string)
	scanner := bufio.NewScanner(f)
	for i := 0; scanner.Scan(); i++ {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			names[i] = name
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return names, nil
}
