package carousel

import "image"

// ImageProvider resolves an image identifier to a decoded image.
// A nil result renders an empty slot; the carousel still navigates.
type ImageProvider interface {
	Image(id string) image.Image
}

// ImageProviderFunc adapts a function to [ImageProvider].
type ImageProviderFunc func(id string) image.Image

// Image calls f(id).
func (f ImageProviderFunc) Image(id string) image.Image {
	return f(id)
}

// CachedProvider memoizes the images returned by another provider, so each
// identifier is loaded at most once. Nil results are not cached.
type CachedProvider struct {
	Source ImageProvider
	images map[string]image.Image
}

// NewCachedProvider wraps source with a per-identifier cache.
func NewCachedProvider(source ImageProvider) *CachedProvider {
	return &CachedProvider{Source: source}
}

// Image returns the cached image for id, loading it on first use.
func (p *CachedProvider) Image(id string) image.Image {
	if img, ok := p.images[id]; ok {
		return img
	}
	if p.Source == nil {
		return nil
	}
	img := p.Source.Image(id)
	if img == nil {
		return nil
	}
	if p.images == nil {
		p.images = make(map[string]image.Image)
	}
	p.images[id] = img
	return img
}
