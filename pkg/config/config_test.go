package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/go-drift/carousel/pkg/carousel"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if len(cfg.Carousel.Images) != 0 || cfg.App.Title != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptional_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "carousel: [unterminated")
	if _, err := LoadOptional(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolve_Full(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  title: Desserts
carousel:
  images:
    - strawberries.png
    - " shortcake.webp "
    - ""
  dir: assets
  seed: 42
  active_color: coral
  inactive_color: "#80FFFFFF"
  height: 200
  caption: Today
`)

	got, err := Resolve(dir, nil)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Title != "Desserts" {
		t.Errorf("Title = %q, want Desserts", got.Title)
	}
	if want := []string{"strawberries.png", "shortcake.webp"}; !slices.Equal(got.Images, want) {
		t.Errorf("Images = %v, want %v", got.Images, want)
	}
	if got.ImageDir != filepath.Join(dir, "assets") {
		t.Errorf("ImageDir = %q, want %q", got.ImageDir, filepath.Join(dir, "assets"))
	}
	if !got.Shuffle || got.Seed == nil || *got.Seed != 42 {
		t.Errorf("expected seeded shuffle, got Shuffle=%v Seed=%v", got.Shuffle, got.Seed)
	}
	if got.ActiveColor != carousel.MustParseColor("coral") {
		t.Errorf("ActiveColor = %#08x", uint32(got.ActiveColor))
	}
	if uint32(got.InactiveColor) != 0x80FFFFFF {
		t.Errorf("InactiveColor = %#08x, want 0x80ffffff", uint32(got.InactiveColor))
	}
	if got.Height != 200 || got.Caption != "Today" {
		t.Errorf("Height/Caption = %v/%q", got.Height, got.Caption)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/gallery/v2\n\ngo 1.24\n")

	got, err := Resolve(dir, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got.Title != "gallery" {
		t.Errorf("Title = %q, want gallery", got.Title)
	}
	if !slices.Equal(got.Images, []string{"a", "b"}) {
		t.Errorf("Images = %v, want fallback", got.Images)
	}
	if got.Shuffle {
		t.Error("Shuffle should default to false")
	}
	if got.ActiveColor != carousel.DefaultActiveColor || got.InactiveColor != carousel.DefaultInactiveColor {
		t.Error("expected default black/white indicator colors")
	}
	if got.Height != defaultHeight {
		t.Errorf("Height = %v, want %v", got.Height, defaultHeight)
	}
	if got.ImageDir != dir {
		t.Errorf("ImageDir = %q, want %q", got.ImageDir, dir)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"no images", "carousel: {}\n", carousel.ErrNoImages},
		{"bad active color", "carousel:\n  images: [a]\n  active_color: nope\n", carousel.ErrUnknownColor},
		{"bad inactive color", "carousel:\n  images: [a]\n  inactive_color: '#12'\n", carousel.ErrUnknownColor},
		{"negative height", "carousel:\n  images: [a]\n  height: -1\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			_, err = cfg.Resolve(t.TempDir(), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
