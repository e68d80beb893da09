package main

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/carousel/pkg/carousel"
)

const swatchSize = 64

// newAssetProvider resolves identifiers to images decoded from dir.
// Identifiers that are not files but are SVG color names render as a swatch.
func newAssetProvider(dir string) carousel.ImageProvider {
	return carousel.NewCachedProvider(assetLoader{fsys: os.DirFS(dir)})
}

type assetLoader struct {
	fsys fs.FS
}

func (l assetLoader) Image(id string) image.Image {
	if img, err := decodeAsset(l.fsys, id); err == nil {
		return img
	} else if !isNotExist(err) {
		log.Printf("carousel-demo: decode %s: %v", id, err)
		return nil
	}
	if c, ok := colornames.Map[strings.ToLower(id)]; ok {
		return swatch(c)
	}
	log.Printf("carousel-demo: no image or color named %q", id)
	return nil
}

func decodeAsset(fsys fs.FS, name string) (image.Image, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func isNotExist(err error) bool {
	// fs.FS rejects absolute and parent-relative names as invalid.
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid)
}

func swatch(c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, swatchSize, swatchSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}
