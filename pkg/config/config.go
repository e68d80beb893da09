// Package config loads the optional carousel.yaml used by apps that embed
// a carousel, and resolves it against defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/drift/pkg/graphics"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/carousel/pkg/carousel"
)

// FileName is the configuration file looked up in the project directory.
const FileName = "carousel.yaml"

const (
	defaultActiveColor   = "black"
	defaultInactiveColor = "white"
	defaultHeight        = 175
)

// Config represents the optional carousel.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Carousel CarouselConfig `yaml:"carousel"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Title string `yaml:"title,omitempty"`
}

// CarouselConfig mirrors the carousel construction parameters.
type CarouselConfig struct {
	Images        []string `yaml:"images"`
	Dir           string   `yaml:"dir,omitempty"`
	Shuffle       bool     `yaml:"shuffle,omitempty"`
	Seed          *int64   `yaml:"seed,omitempty"`
	ActiveColor   string   `yaml:"active_color,omitempty"`
	InactiveColor string   `yaml:"inactive_color,omitempty"`
	Height        float64  `yaml:"height,omitempty"`
	Caption       string   `yaml:"caption,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	Title         string
	Images        []string
	ImageDir      string
	Shuffle       bool
	Seed          *int64
	ActiveColor   graphics.Color
	InactiveColor graphics.Color
	Height        float64
	Caption       string
}

// LoadOptional reads carousel.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes carousel.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads carousel.yaml (if present) and resolves defaults.
// fallbackImages are used when the file lists no images.
func Resolve(dir string, fallbackImages []string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, fallbackImages)
}

// Resolve applies defaults and validates the configuration.
func (cfg *Config) Resolve(dir string, fallbackImages []string) (*Resolved, error) {
	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = defaultTitle(dir)
	}

	images := cleanImages(cfg.Carousel.Images)
	if len(images) == 0 {
		images = cleanImages(fallbackImages)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%s: carousel.images: %w", FileName, carousel.ErrNoImages)
	}

	active, err := parseColor("active_color", cfg.Carousel.ActiveColor, defaultActiveColor)
	if err != nil {
		return nil, err
	}
	inactive, err := parseColor("inactive_color", cfg.Carousel.InactiveColor, defaultInactiveColor)
	if err != nil {
		return nil, err
	}

	height := cfg.Carousel.Height
	if height < 0 {
		return nil, fmt.Errorf("%s: carousel.height must not be negative, got %v", FileName, height)
	}
	if height == 0 {
		height = defaultHeight
	}

	imageDir := strings.TrimSpace(cfg.Carousel.Dir)
	if imageDir == "" {
		imageDir = "."
	}
	if !filepath.IsAbs(imageDir) {
		imageDir = filepath.Join(dir, imageDir)
	}

	return &Resolved{
		Root:          dir,
		Title:         title,
		Images:        images,
		ImageDir:      imageDir,
		Shuffle:       cfg.Carousel.Shuffle || cfg.Carousel.Seed != nil,
		Seed:          cfg.Carousel.Seed,
		ActiveColor:   active,
		InactiveColor: inactive,
		Height:        height,
		Caption:       cfg.Carousel.Caption,
	}, nil
}

func parseColor(field, value, fallback string) (graphics.Color, error) {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	c, err := carousel.ParseColor(value)
	if err != nil {
		return 0, fmt.Errorf("%s: carousel.%s: %w", FileName, field, err)
	}
	return c, nil
}

func cleanImages(images []string) []string {
	var out []string
	for _, img := range images {
		img = strings.TrimSpace(img)
		if img != "" {
			out = append(out, img)
		}
	}
	return out
}

// defaultTitle derives a title from the last element of the module path in
// dir/go.mod, falling back to the directory name.
func defaultTitle(dir string) string {
	base := filepath.Base(dir)
	if data, err := os.ReadFile(filepath.Join(dir, "go.mod")); err == nil {
		if path := modfile.ModulePath(data); path != "" {
			prefix, _, ok := module.SplitPathVersion(path)
			if ok {
				parts := strings.Split(prefix, "/")
				base = parts[len(parts)-1]
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "Carousel"
	}
	return base
}
