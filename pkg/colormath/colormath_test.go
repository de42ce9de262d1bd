package colormath

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "six digits with hash", input: "#FF8800", want: "#ff8800"},
		{name: "six digits without hash", input: "ff8800", want: "#ff8800"},
		{name: "three digits expand", input: "#F80", want: "#ff8800"},
		{name: "surrounding whitespace", input: "  #abc ", want: "#aabbcc"},
		{name: "four digits rejected", input: "#abcd", wantErr: true},
		{name: "non hex rejected", input: "#gggggg", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeHex(tc.input)
			if tc.wantErr {
				var pe *ParseError
				require.Error(t, err)
				assert.True(t, errors.As(err, &pe))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColorful_RoundTrip(t *testing.T) {
	conv := NewColorful()

	// Sample the cube coarsely plus a few edge values.
	var samples []string
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				samples = append(samples, fmt.Sprintf("#%02x%02x%02x", r, g, b))
			}
		}
	}
	samples = append(samples, "#0d47a1", "#e91e63", "#7f7f7f", "#010203")

	for _, hex := range samples {
		lch, err := conv.ToOKLCH(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, conv.FromOKLCH(lch), "round trip of %s", hex)
	}
}

func TestColorful_RoundedRoundTripWithinTolerance(t *testing.T) {
	conv := NewColorful()
	for _, hex := range []string{"#3b82f6", "#ef4444", "#10b981", "#f59e0b", "#6366f1"} {
		lch, err := conv.ToOKLCH(hex)
		require.NoError(t, err)

		back := conv.FromOKLCH(Round(lch))
		orig, err := conv.ToRGB(hex)
		require.NoError(t, err)
		got, err := conv.ToRGB(back)
		require.NoError(t, err)

		r1, g1, b1 := orig.RGB255()
		r2, g2, b2 := got.RGB255()
		assert.InDelta(t, int(r1), int(r2), 2, hex)
		assert.InDelta(t, int(g1), int(g2), 2, hex)
		assert.InDelta(t, int(b1), int(b2), 2, hex)
	}
}

func TestColorful_KnownValues(t *testing.T) {
	conv := NewColorful()

	white, err := conv.ToOKLCH("#fff")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, white.L, 1e-3)
	assert.InDelta(t, 0.0, white.C, 1e-3)

	black, err := conv.ToOKLCH("000000")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, black.L, 1e-3)

	red, err := conv.ToOKLCH("#ff0000")
	require.NoError(t, err)
	r := Round(red)
	assert.InDelta(t, 0.628, r.L, 0.002)
	assert.InDelta(t, 0.258, r.C, 0.002)
	assert.InDelta(t, 29.2, r.H, 0.3)
}

func TestColorful_InvalidInput(t *testing.T) {
	conv := NewColorful()
	_, err := conv.ToOKLCH("not-a-color")
	var pe *ParseError
	require.Error(t, err)
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "not-a-color", pe.Input)

	_, err = conv.ToRGB("#12")
	assert.Error(t, err)
}

func TestColorful_FromOKLCHClampsOutOfGamut(t *testing.T) {
	conv := NewColorful()
	hex := conv.FromOKLCH(OKLCH{L: 0.9, C: 0.4, H: 140})
	norm, err := NormalizeHex(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, norm)
}

func TestNormalizeHue(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeHue(360))
	assert.Equal(t, 330.0, NormalizeHue(-30))
	assert.Equal(t, 60.0, NormalizeHue(420))
	assert.Equal(t, 15.5, NormalizeHue(15.5))
}

func TestFormatCSS(t *testing.T) {
	assert.Equal(t, "oklch(0.5 0.123 200.1)", FormatCSS(OKLCH{L: 0.50004, C: 0.12345, H: 200.06}))
}

func TestFormatRGB(t *testing.T) {
	assert.Equal(t, "rgb(255, 128, 0)", FormatRGB(RGB{R: 1, G: 128.0 / 255.0, B: 0}))
}

func TestCachedConverter(t *testing.T) {
	cc, err := NewCachedConverter(NewColorful(), 2)
	require.NoError(t, err)

	first, err := cc.ToOKLCH("#ABC")
	require.NoError(t, err)
	second, err := cc.ToOKLCH("aabbcc")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stats := cc.Stats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, 1, stats.Size)

	_, err = cc.ToRGB("#111111")
	require.NoError(t, err)
	_, err = cc.ToRGB("#222222")
	require.NoError(t, err)
	assert.Equal(t, 2, cc.Stats().Size, "LRU should cap entries")

	_, err = cc.ToRGB("nope")
	assert.Error(t, err)

	assert.Equal(t, "#ffffff", cc.FromRGB(RGB{R: 1.2, G: 1, B: 1}))
}
