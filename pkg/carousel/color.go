package carousel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/drift/pkg/graphics"
	"golang.org/x/image/colornames"
)

// Default indicator colors.
var (
	DefaultActiveColor   = graphics.RGB(0x00, 0x00, 0x00)
	DefaultInactiveColor = graphics.RGB(0xFF, 0xFF, 0xFF)
)

// ParseColor converts a color name or hex string to a [graphics.Color].
//
// Accepted forms (case-insensitive):
//   - SVG 1.1 color names such as "black", "white", or "coral"
//   - "#RGB", "#RRGGBB", and "#AARRGGBB"
//
// Unrecognized input fails with an error matching [ErrUnknownColor].
func ParseColor(s string) (graphics.Color, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", ErrUnknownColor)
	}
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:], s)
	}
	if c, ok := colornames.Map[value]; ok {
		return graphics.RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustParseColor is like [ParseColor] but panics on error.
// Use it for compile-time constants.
func MustParseColor(s string) graphics.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(hex, original string) (graphics.Color, error) {
	switch len(hex) {
	case 3:
		// #RGB expands each digit: #f0a -> #ff00aa
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		fallthrough
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, original)
		}
		return graphics.Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrUnknownColor, original)
		}
		return graphics.Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, original)
	}
}
