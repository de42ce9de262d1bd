// Package palette derives harmonic color sets and lightness ramps from a
// base color in OKLCH space.
package palette

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/gnana997/huekit/pkg/colormath"
)

// Kind names a harmony pattern.
type Kind string

const (
	Monochromatic      Kind = "monochromatic"
	Complementary      Kind = "complementary"
	Triadic            Kind = "triadic"
	Tetradic           Kind = "tetradic"
	Analogous          Kind = "analogous"
	SplitComplementary Kind = "split-complementary"
)

// Kinds lists every harmony kind.
var Kinds = []Kind{
	Monochromatic,
	Complementary,
	Triadic,
	Tetradic,
	Analogous,
	SplitComplementary,
}

// ParseKind validates a harmony kind name.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	best, bestDist := "", 4
	for _, k := range Kinds {
		if string(k) == n {
			return k, nil
		}
		if d := levenshtein.ComputeDistance(n, string(k)); d < bestDist {
			best, bestDist = string(k), d
		}
	}
	if best != "" {
		return "", fmt.Errorf("unknown harmony kind %q (did you mean %q?)", name, best)
	}
	return "", fmt.Errorf("unknown harmony kind %q", name)
}

// HarmonyColor is one member of a harmony.
type HarmonyColor struct {
	Hue       float64 `json:"hue"`
	Lightness float64 `json:"lightness"`
	Chroma    float64 `json:"chroma"`
	Hex       string  `json:"hex"`
}

// OKLCH returns the color as a colormath.OKLCH.
func (h HarmonyColor) OKLCH() colormath.OKLCH {
	return colormath.OKLCH{L: h.Lightness, C: h.Chroma, H: h.Hue}
}

const (
	minMonoLightness = 0.1
	maxMonoLightness = 0.95
)

var (
	monoLightnessOffsets = []float64{-0.3, -0.15, 0, 0.15, 0.3}

	hueOffsets = map[Kind][]float64{
		Complementary:      {0, 180},
		Triadic:            {0, 120, 240},
		Tetradic:           {0, 90, 180, 270},
		Analogous:          {-30, -15, 0, 15, 30},
		SplitComplementary: {0, 150, 210},
	}
)

// Engine generates harmonies and ramps using an injected color converter.
type Engine struct {
	conv colormath.Converter
}

// NewEngine returns an Engine backed by conv.
func NewEngine(conv colormath.Converter) *Engine {
	return &Engine{conv: conv}
}

// Harmony returns the colors of the given harmony built around base, in a
// fixed order. The result is empty when base cannot be parsed or kind is
// unknown.
func (e *Engine) Harmony(base string, kind Kind) []HarmonyColor {
	lch, err := e.conv.ToOKLCH(base)
	if err != nil {
		return []HarmonyColor{}
	}

	if kind == Monochromatic {
		out := make([]HarmonyColor, 0, len(monoLightnessOffsets))
		for _, off := range monoLightnessOffsets {
			out = append(out, e.color(lch.H, clamp(lch.L+off, minMonoLightness, maxMonoLightness), lch.C))
		}
		return out
	}

	offsets, ok := hueOffsets[kind]
	if !ok {
		return []HarmonyColor{}
	}
	out := make([]HarmonyColor, 0, len(offsets))
	for _, off := range offsets {
		out = append(out, e.color(lch.H+off, lch.L, lch.C))
	}
	return out
}

func (e *Engine) color(hue, lightness, chroma float64) HarmonyColor {
	c := HarmonyColor{
		Hue:       colormath.NormalizeHue(hue),
		Lightness: lightness,
		Chroma:    chroma,
	}
	c.Hex = e.conv.FromOKLCH(c.OKLCH())
	return c
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
