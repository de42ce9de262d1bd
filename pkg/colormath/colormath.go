// Package colormath converts colors between hex, sRGB and OKLCH.
//
// The perceptual math itself is delegated to go-colorful; this package only
// normalizes inputs, rounds outputs and exposes the conversions behind the
// Converter interface so engines can take them as a collaborator.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an sRGB triple with channels in [0,1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// OKLCH is a color in OKLCH space. L is in [0,1], C is roughly [0,0.4] and H
// is in degrees [0,360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// ParseError reports a color string that could not be parsed.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid color %q", e.Input)
}

// Converter is the set of color conversions the engines depend on.
type Converter interface {
	// ToOKLCH parses a hex color and returns it in OKLCH space.
	ToOKLCH(hex string) (OKLCH, error)

	// FromOKLCH encodes an OKLCH color as lowercase #rrggbb, clamping
	// out-of-gamut colors into sRGB.
	FromOKLCH(c OKLCH) string

	// ToRGB parses a hex color into an sRGB triple.
	ToRGB(hex string) (RGB, error)

	// FromRGB encodes an sRGB triple as lowercase #rrggbb.
	FromRGB(c RGB) string
}

// Colorful implements Converter with go-colorful.
type Colorful struct{}

// NewColorful returns the default converter.
func NewColorful() Colorful {
	return Colorful{}
}

func (Colorful) ToOKLCH(hex string) (OKLCH, error) {
	c, err := parse(hex)
	if err != nil {
		return OKLCH{}, err
	}
	l, ch, h := c.OkLch()
	return OKLCH{L: l, C: ch, H: NormalizeHue(h)}, nil
}

func (Colorful) FromOKLCH(c OKLCH) string {
	return colorful.OkLch(c.L, c.C, c.H).Clamped().Hex()
}

func (Colorful) ToRGB(hex string) (RGB, error) {
	c, err := parse(hex)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

func (Colorful) FromRGB(c RGB) string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

func parse(hex string) (colorful.Color, error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return colorful.Color{}, &ParseError{Input: hex}
	}
	return c, nil
}

// NormalizeHex accepts #RGB or #RRGGBB with the leading # optional and
// returns the lowercase 6-digit form with a leading #.
func NormalizeHex(s string) (string, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 3 && len(h) != 6 {
		return "", &ParseError{Input: s}
	}
	for _, r := range h {
		if !isHexDigit(r) {
			return "", &ParseError{Input: s}
		}
	}
	h = strings.ToLower(h)
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	return "#" + h, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// NormalizeHue wraps a hue in degrees into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// RoundTo rounds x to the given number of decimal places.
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Round returns c with lightness and chroma rounded to 3 decimals and hue to 1.
func Round(c OKLCH) OKLCH {
	return OKLCH{
		L: RoundTo(c.L, 3),
		C: RoundTo(c.C, 3),
		H: NormalizeHue(RoundTo(c.H, 1)),
	}
}

// FormatCSS renders c as a CSS oklch() function using rounded components.
func FormatCSS(c OKLCH) string {
	r := Round(c)
	return fmt.Sprintf("oklch(%s %s %s)", formatFloat(r.L), formatFloat(r.C), formatFloat(r.H))
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// RGB255 returns the 0-255 integer channels of c.
func (c RGB) RGB255() (r, g, b uint8) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
}

// FormatRGB renders c as a CSS rgb() function.
func FormatRGB(c RGB) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}
