package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/huekit/pkg/colormath"
	"github.com/gnana997/huekit/pkg/tokens"
)

func testEngine() *Engine {
	return NewEngine(colormath.NewColorful())
}

func TestHarmony_Arity(t *testing.T) {
	e := testEngine()
	want := map[Kind]int{
		Monochromatic:      5,
		Complementary:      2,
		Triadic:            3,
		Tetradic:           4,
		Analogous:          5,
		SplitComplementary: 3,
	}

	for _, base := range []string{"#3b82f6", "#ef4444", "#10b981", "#000000", "#ffffff", "f0f"} {
		for kind, n := range want {
			t.Run(string(kind)+"/"+base, func(t *testing.T) {
				colors := e.Harmony(base, kind)
				require.Len(t, colors, n)
				for _, c := range colors {
					assert.GreaterOrEqual(t, c.Hue, 0.0)
					assert.Less(t, c.Hue, 360.0)
					_, err := colormath.NormalizeHex(c.Hex)
					assert.NoError(t, err)
				}
			})
		}
	}
}

func TestHarmony_Triadic(t *testing.T) {
	e := testEngine()
	base, err := colormath.NewColorful().ToOKLCH("#3b82f6")
	require.NoError(t, err)

	colors := e.Harmony("#3b82f6", Triadic)
	require.Len(t, colors, 3)
	assert.InDelta(t, base.H, colors[0].Hue, 1e-9)
	assert.InDelta(t, colormath.NormalizeHue(base.H+120), colors[1].Hue, 1e-9)
	assert.InDelta(t, colormath.NormalizeHue(base.H+240), colors[2].Hue, 1e-9)
	for _, c := range colors {
		assert.InDelta(t, base.L, c.Lightness, 1e-9)
		assert.InDelta(t, base.C, c.Chroma, 1e-9)
	}
}

func TestHarmony_MonochromaticClampsLightness(t *testing.T) {
	e := testEngine()
	colors := e.Harmony("#fafafa", Monochromatic)
	require.Len(t, colors, 5)

	base, err := colormath.NewColorful().ToOKLCH("#fafafa")
	require.NoError(t, err)
	for _, c := range colors {
		assert.GreaterOrEqual(t, c.Lightness, minMonoLightness)
		assert.LessOrEqual(t, c.Lightness, maxMonoLightness)
		assert.InDelta(t, base.H, c.Hue, 1e-9)
		assert.InDelta(t, base.C, c.Chroma, 1e-9)
	}
	assert.Equal(t, maxMonoLightness, colors[4].Lightness)
}

func TestHarmony_Deterministic(t *testing.T) {
	e := testEngine()
	assert.Equal(t, e.Harmony("#123456", Analogous), e.Harmony("#123456", Analogous))
}

func TestHarmony_InvalidInput(t *testing.T) {
	e := testEngine()
	assert.Empty(t, e.Harmony("not a color", Triadic))
	assert.NotNil(t, e.Harmony("not a color", Triadic))
	assert.Empty(t, e.Harmony("#3b82f6", Kind("pentadic")))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Split-Complementary")
	require.NoError(t, err)
	assert.Equal(t, SplitComplementary, k)

	_, err = ParseKind("tridic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "triadic"`)

	_, err = ParseKind("xyz")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestRamp(t *testing.T) {
	e := testEngine()
	for _, base := range []string{"#3b82f6", "#000", "#ffffff", "#22c55e"} {
		t.Run(base, func(t *testing.T) {
			ramp := e.Ramp(base)
			require.Len(t, ramp, 10)

			for i, s := range ramp {
				assert.Equal(t, Steps[i], s.Step)
				if i > 0 {
					assert.Less(t, s.Lightness, ramp[i-1].Lightness, "lightness must fall as step rises")
				}
			}
			assert.InDelta(t, 0.95, ramp[0].Lightness, 1e-9)
			assert.InDelta(t, 0.05, ramp[9].Lightness, 1e-9)
		})
	}
}

func TestRamp_ChromaAttenuation(t *testing.T) {
	e := testEngine()
	base, err := colormath.NewColorful().ToOKLCH("#3b82f6")
	require.NoError(t, err)

	ramp := e.Ramp("#3b82f6")
	require.Len(t, ramp, 10)
	assert.InDelta(t, base.C*highLightnessChroma, ramp[0].Chroma, 1e-9) // 0.95
	assert.InDelta(t, base.C*highLightnessChroma, ramp[1].Chroma, 1e-9) // 0.85
	assert.InDelta(t, base.C, ramp[2].Chroma, 1e-9)                     // 0.75
	assert.InDelta(t, base.C, ramp[7].Chroma, 1e-9)                     // 0.25
	assert.InDelta(t, base.C*lowLightnessChroma, ramp[8].Chroma, 1e-9)  // 0.15
	assert.InDelta(t, base.C*lowLightnessChroma, ramp[9].Chroma, 1e-9)  // 0.05
}

func TestRamp_InvalidInput(t *testing.T) {
	assert.Empty(t, testEngine().Ramp("#12345"))
}

func TestPaletteToTokens(t *testing.T) {
	e := testEngine()
	ramps := e.Palette("#3b82f6", Complementary)
	require.Len(t, ramps, 2)
	assert.Equal(t, "primary", ramps[0].Name)
	assert.Equal(t, "secondary", ramps[1].Name)

	set := ToTokens(ramps)
	assert.Equal(t, 20, set.Len())

	tok, ok := set.Get("color.primary.500")
	require.True(t, ok)
	assert.Equal(t, tokens.TypeColor, tok.Type)
	assert.Equal(t, ramps[0].Steps[5].Hex, tok.Value)

	out, err := tokens.Generate(tokens.FormatTailwind, set)
	require.NoError(t, err)
	assert.Contains(t, out, "'secondary': {")
}
