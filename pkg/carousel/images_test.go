package carousel

import (
	"image"
	"testing"
)

func TestCachedProvider(t *testing.T) {
	loads := make(map[string]int)
	provider := NewCachedProvider(ImageProviderFunc(func(id string) image.Image {
		loads[id]++
		if id == "missing" {
			return nil
		}
		return image.NewGray(image.Rect(0, 0, 1, 1))
	}))

	first := provider.Image("a")
	second := provider.Image("a")
	if first == nil || first != second {
		t.Error("expected the same cached image for repeated lookups")
	}
	if loads["a"] != 1 {
		t.Errorf("expected 1 load for a, got %d", loads["a"])
	}

	provider.Image("missing")
	provider.Image("missing")
	if loads["missing"] != 2 {
		t.Errorf("nil results should not be cached, got %d loads", loads["missing"])
	}
}

func TestCachedProvider_NilSource(t *testing.T) {
	var provider CachedProvider
	if img := provider.Image("a"); img != nil {
		t.Errorf("expected nil image, got %v", img)
	}
}
