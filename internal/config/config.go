package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Render RenderConfig `json:"render"`
	Output OutputConfig `json:"output"`
	Loader LoaderConfig `json:"loader"`
}

// RenderConfig holds configuration for box and legend drawing
type RenderConfig struct {
	StrokeWidth int  `json:"stroke_width"`
	ShowLegend  bool `json:"show_legend"`
	LegendText  bool `json:"legend_text"`
}

// OutputConfig holds configuration for saving annotated images
type OutputConfig struct {
	DefaultFormat string `json:"default_format"`
	Quality       int    `json:"quality"`
	Lossless      bool   `json:"lossless"`
	OutputDir     string `json:"output_dir"`
	Suffix        string `json:"suffix"`
}

// LoaderConfig holds configuration for image loading and label pairing
type LoaderConfig struct {
	SupportedFormats []string `json:"supported_formats"`
	LabelExtension   string   `json:"label_extension"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			StrokeWidth: 2,
			ShowLegend:  true,
			LegendText:  true,
		},
		Output: OutputConfig{
			DefaultFormat: "jpg",
			Quality:       90,
			Lossless:      false,
			OutputDir:     "./out",
			Suffix:        "_annotated",
		},
		Loader: LoaderConfig{
			SupportedFormats: []string{"jpg", "jpeg", "png", "bmp", "tif", "tiff", "webp"},
			LabelExtension:   ".txt",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Render.StrokeWidth < 1 {
		return fmt.Errorf("render.stroke_width must be positive")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	switch c.Output.DefaultFormat {
	case "jpg", "jpeg", "png", "webp":
	default:
		return fmt.Errorf("output.default_format must be one of jpg, jpeg, png, webp")
	}

	if len(c.Loader.SupportedFormats) == 0 {
		return fmt.Errorf("loader.supported_formats cannot be empty")
	}

	if c.Loader.LabelExtension == "" {
		return fmt.Errorf("loader.label_extension cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "bboxview", "config.json")
}
