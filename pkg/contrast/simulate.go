package contrast

import (
	"strings"

	"github.com/gnana997/huekit/pkg/colormath"
)

// Deficiency is a simulated color vision deficiency.
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// Deficiencies lists the supported simulations.
var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia}

type matrix [3][3]float64

var simulationMatrices = map[Deficiency]matrix{
	Protanopia: {
		{0.567, 0.433, 0},
		{0.558, 0.442, 0},
		{0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0},
		{0.7, 0.3, 0},
		{0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0},
		{0, 0.433, 0.567},
		{0, 0.475, 0.525},
	},
}

func (m matrix) apply(c colormath.RGB) colormath.RGB {
	return colormath.RGB{
		R: clampUnit(m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B),
		G: clampUnit(m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B),
		B: clampUnit(m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B),
	}
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ParseDeficiency maps a user-supplied name onto a Deficiency, ignoring
// case and surrounding space.
func ParseDeficiency(name string) (Deficiency, bool) {
	n := Deficiency(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := simulationMatrices[n]; !ok {
		return "", false
	}
	return n, true
}

// Simulate returns color as seen with the given deficiency, as lowercase
// #rrggbb. Kinds are matched exactly; anything other than the Deficiency
// constants, or an unparseable color, returns color unchanged.
func (e *Engine) Simulate(color string, kind Deficiency) string {
	m, ok := simulationMatrices[kind]
	if !ok {
		return color
	}
	rgb, err := e.conv.ToRGB(color)
	if err != nil {
		return color
	}
	return e.conv.FromRGB(m.apply(rgb))
}

// SimulateAll runs every supported simulation on color.
func (e *Engine) SimulateAll(color string) map[Deficiency]string {
	out := make(map[Deficiency]string, len(Deficiencies))
	for _, d := range Deficiencies {
		out[d] = e.Simulate(color, d)
	}
	return out
}
