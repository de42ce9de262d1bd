package tokens

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() *TokenSet {
	set := NewTokenSet()
	set.Set(Token{Name: "color.primary.500", Value: "#3b82f6", Type: TypeColor, Path: []string{"color", "primary", "500"}})
	set.Set(Token{Name: "color.primary.600", Value: "{color.primary.500}", Type: TypeColor, Path: []string{"color", "primary", "600"}})
	set.Set(Token{Name: "accent", Value: "#ff0000", Type: TypeColor, Path: []string{"accent"}})
	set.Set(Token{Name: "spacing.md", Value: "1rem", Type: TypeDimension, Path: []string{"spacing", "md"}})
	set.Set(Token{Name: "font.size.body", Value: "14px", Type: TypeDimension, Path: []string{"font", "size", "body"}})
	set.Set(Token{Name: "radius.sm", Value: "4", Type: TypeDimension, Path: []string{"radius", "sm"}})
	set.Set(Token{Name: "font.family.sans", Value: "Inter", Type: TypeFontFamily, Path: []string{"font", "family", "sans"}})
	set.Set(Token{Name: "z.modal", Value: "100", Type: TypeNumber, Path: []string{"z", "modal"}})
	return set
}

func TestGenerate_CSSRoundTrip(t *testing.T) {
	set, err := Parse("--foo: 8px;")
	require.NoError(t, err)

	out, err := Generate(FormatCSS, set)
	require.NoError(t, err)
	assert.Contains(t, out, "--foo: 8px;")
	assert.Equal(t, ":root {\n  --foo: 8px;\n}\n", out)
}

func TestGenerate_CSS(t *testing.T) {
	out, err := Generate(FormatCSS, sampleSet())
	require.NoError(t, err)
	assert.Contains(t, out, "  --color-primary-500: #3b82f6;\n")
	assert.Contains(t, out, "  --color-primary-600: {color.primary.500};\n", "references are emitted verbatim")
	assert.True(t, strings.Index(out, "--color-primary-500") < strings.Index(out, "--accent"), "source order is kept")
}

func TestGenerate_SCSS(t *testing.T) {
	out, err := Generate(FormatSCSS, sampleSet())
	require.NoError(t, err)
	assert.Contains(t, out, "$color-primary-500: #3b82f6;\n")
	assert.Contains(t, out, "$spacing-md: 1rem;\n")
}

func TestGenerate_JS(t *testing.T) {
	set, err := Parse("--brand-blue: #00f;")
	require.NoError(t, err)
	set = set.Merge(sampleSet())

	out, err := Generate(FormatJS, set)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "export const tokens = {\n"))
	assert.Contains(t, out, `  brand_blue: "#00f",`)
	assert.Contains(t, out, `  color_primary_500: "#3b82f6",`)
	assert.Contains(t, out, "export default tokens;")
}

func TestGenerate_JSON(t *testing.T) {
	out, err := Generate(FormatJSON, sampleSet())
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "#3b82f6", decoded["color.primary.500"])
	assert.Equal(t, "{color.primary.500}", decoded["color.primary.600"])
	assert.Len(t, decoded, 8)

	empty, err := Generate(FormatJSON, NewTokenSet())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", empty)
}

func TestGenerate_Tailwind(t *testing.T) {
	out, err := Generate(FormatTailwind, sampleSet())
	require.NoError(t, err)

	assert.Contains(t, out, "module.exports = {")
	assert.Contains(t, out, "        'primary': {\n          '500': '#3b82f6',\n          '600': '{color.primary.500}',\n        },")
	assert.Contains(t, out, "        'accent': '#ff0000',")
	assert.Contains(t, out, "      spacing: {\n        'md': '1rem',\n        'sm': '4',\n      },")
	assert.Contains(t, out, "      fontSize: {\n        'body': '14px',\n      },")
	assert.Contains(t, out, "      fontFamily: {\n        'sans': 'Inter',\n      },")
	assert.NotContains(t, out, "modal")
	assert.Contains(t, out, "// Usage examples:")
}

func TestGenerate_TailwindEscapesQuotes(t *testing.T) {
	set := NewTokenSet()
	set.Set(Token{Name: "font.family.serif", Value: "'Times New Roman', serif", Type: TypeFontFamily, Path: []string{"font", "family", "serif"}})
	out, err := Generate(FormatTailwind, set)
	require.NoError(t, err)
	assert.Contains(t, out, `'serif': '\'Times New Roman\', serif',`)
	assert.NotContains(t, out, "colors:")
}

func TestGenerate_IOS(t *testing.T) {
	out, err := Generate(FormatIOS, sampleSet())
	require.NoError(t, err)
	assert.Contains(t, out, "import SwiftUI")
	assert.Contains(t, out, `    static let colorPrimary500 = Color(hex: "#3b82f6")`)
	assert.Contains(t, out, `    static let spacingMd = "1rem"`)
	assert.Contains(t, out, `    static let zModal = "100"`)
}

func TestCamelName(t *testing.T) {
	assert.Equal(t, "colorPrimary500", camelName("color.primary.500"))
	assert.Equal(t, "brandBlue", camelName("brand-blue"))
	assert.Equal(t, "_500", camelName("500"))
	assert.Equal(t, "_", camelName("..."))
}

func TestGenerate_Android(t *testing.T) {
	out, err := Generate(FormatAndroid, sampleSet())
	require.NoError(t, err)

	assert.Contains(t, out, "<!-- colors.xml -->")
	assert.Contains(t, out, `    <color name="color_primary_500">#3b82f6</color>`)
	assert.Contains(t, out, "<!-- dimens.xml -->")
	assert.Contains(t, out, `    <dimen name="spacing_md">16dp</dimen>`)
	assert.Contains(t, out, `    <dimen name="font_size_body">14px</dimen>`)
	assert.Contains(t, out, `    <dimen name="radius_sm">4dp</dimen>`)
	assert.Contains(t, out, "<!-- strings.xml -->")
	assert.Contains(t, out, `    <string name="font_family_sans">Inter</string>`)
	assert.Contains(t, out, `    <string name="z_modal">100</string>`)
}

func TestGenerate_AndroidSectionsStartWithDeclaration(t *testing.T) {
	out, err := Generate(FormatAndroid, sampleSet())
	require.NoError(t, err)

	sections := strings.Split(strings.TrimSuffix(out, "\n"), "\n\n")
	require.Len(t, sections, 3)
	for i, file := range []string{"colors.xml", "dimens.xml", "strings.xml"} {
		lines := strings.Split(sections[i], "\n")
		assert.Equal(t, `<?xml version="1.0" encoding="utf-8"?>`, lines[0])
		assert.Equal(t, "<!-- "+file+" -->", lines[1])
		assert.Equal(t, "<resources>", lines[2])
		assert.Equal(t, "</resources>", lines[len(lines)-1])
		assert.Equal(t, 1, strings.Count(sections[i], "<?xml"))
	}
}

func TestGenerate_AndroidSkipsEmptyBuckets(t *testing.T) {
	set := NewTokenSet()
	set.Set(Token{Name: "gap", Value: "0.75rem", Type: TypeDimension, Path: []string{"gap"}})

	out, err := Generate(FormatAndroid, set)
	require.NoError(t, err)
	assert.NotContains(t, out, "colors.xml")
	assert.NotContains(t, out, "strings.xml")
	assert.Contains(t, out, `<dimen name="gap">12dp</dimen>`)
}

func TestGenerate_AndroidTypeIsAuthoritative(t *testing.T) {
	// Looks like a color but is typed as a string, so it lands in strings.xml.
	set := NewTokenSet()
	set.Set(Token{Name: "label", Value: "#fff & more", Type: TypeString, Path: []string{"label"}})

	out, err := Generate(FormatAndroid, set)
	require.NoError(t, err)
	assert.NotContains(t, out, "colors.xml")
	assert.Contains(t, out, `<string name="label">#fff &amp; more</string>`)
}

func TestAndroidDimension(t *testing.T) {
	tests := map[string]string{
		"1rem":    "16dp",
		"1.5rem":  "24dp",
		"0.3rem":  "5dp",
		"12":      "12dp",
		"8px":     "8px",
		"2em":     "2em",
		"50%":     "50%",
		"bad rem": "bad rem",
	}
	for in, want := range tests {
		assert.Equal(t, want, androidDimension(in), in)
	}
}

func TestGenerate_UnknownFormat(t *testing.T) {
	_, err := Generate(Format("yaml"), sampleSet())
	var ue *UnknownFormatError
	require.Error(t, err)
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "yaml", ue.Name)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSS ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSS, f)

	_, err = ParseFormat("tailwnd")
	var ue *UnknownFormatError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "tailwind", ue.Suggestion)
	assert.Contains(t, err.Error(), `did you mean "tailwind"`)

	_, err = ParseFormat("protobuf")
	require.True(t, errors.As(err, &ue))
	assert.Empty(t, ue.Suggestion)
}

func TestGenerateAll(t *testing.T) {
	out, err := GenerateAll(sampleSet())
	require.NoError(t, err)
	require.Len(t, out, len(AllFormats))

	for _, f := range AllFormats {
		content, ok := out[f.FileName()]
		require.True(t, ok, "missing %s", f.FileName())
		assert.NotEmpty(t, content)
	}
	assert.Contains(t, out["tokens.css"], "--accent: #ff0000;")
	assert.Contains(t, out["DesignTokens.swift"], "enum DesignTokens")
}
