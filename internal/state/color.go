package state

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"red":    "#ff0000",
	"green":  "#00ff00",
	"blue":   "#0000ff",
	"yellow": "#ffff00",
}

// NormalizeColor accepts "#rgb", "#rrggbb" or a few basic names and returns
// the lowercase "#rrggbb" form.
func NormalizeColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		return hex, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}

// ToNRGBA converts a stored colour string to an opaque image colour. Unknown
// strings render black.
func ToNRGBA(s string) color.NRGBA {
	hex, err := NormalizeColor(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	c, _ := colorful.Hex(hex)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ColorString converts an image colour to the stored "#rrggbb" form.
func ColorString(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent
		return "#ffffff"
	}
	return cf.Hex()
}
