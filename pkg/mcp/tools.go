package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/huekit/pkg/contrast"
	"github.com/gnana997/huekit/pkg/palette"
	"github.com/gnana997/huekit/pkg/tokens"
)

func convertColorTool() mcp.Tool {
	return mcp.NewTool("convert_color",
		mcp.WithDescription("Convert a hex color to OKLCH, RGB and CSS notations. The color is added to the conversion history."),
		mcp.WithString("hex", mcp.Required(), mcp.Description("Hex color, with or without '#', 3 or 6 digits")),
	)
}

func oklchToHexTool() mcp.Tool {
	return mcp.NewTool("oklch_to_hex",
		mcp.WithDescription("Convert an OKLCH color to hex. Out-of-gamut colors are clamped to sRGB."),
		mcp.WithNumber("l", mcp.Required(), mcp.Description("Lightness, 0 to 1")),
		mcp.WithNumber("c", mcp.Required(), mcp.Description("Chroma, 0 or more (typically below 0.4)")),
		mcp.WithNumber("h", mcp.Required(), mcp.Description("Hue in degrees")),
	)
}

func contrastRatioTool() mcp.Tool {
	return mcp.NewTool("contrast_ratio",
		mcp.WithDescription("WCAG 2.x contrast ratio between two colors, with AA/AAA compliance for normal and large text"),
		mcp.WithString("foreground", mcp.Required(), mcp.Description("Text color (hex)")),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background color (hex)")),
	)
}

func simulateColorBlindnessTool() mcp.Tool {
	kinds := make([]string, len(contrast.Deficiencies))
	for i, d := range contrast.Deficiencies {
		kinds[i] = string(d)
	}
	return mcp.NewTool("simulate_color_blindness",
		mcp.WithDescription("Approximate how a color appears under a color vision deficiency. Omit type to simulate all."),
		mcp.WithString("color", mcp.Required(), mcp.Description("Hex color")),
		mcp.WithString("type", mcp.Description("Deficiency to simulate"), mcp.Enum(kinds...)),
	)
}

func suggestTextColorTool() mcp.Tool {
	return mcp.NewTool("suggest_text_color",
		mcp.WithDescription("Pick black or white text, whichever contrasts more with the background"),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background color (hex)")),
	)
}

func harmonyKinds() []string {
	kinds := make([]string, len(palette.Kinds))
	for i, k := range palette.Kinds {
		kinds[i] = string(k)
	}
	return kinds
}

func generateHarmonyTool() mcp.Tool {
	return mcp.NewTool("generate_harmony",
		mcp.WithDescription("Generate a color harmony in OKLCH space around a base color"),
		mcp.WithString("base", mcp.Required(), mcp.Description("Base hex color")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Harmony kind"), mcp.Enum(harmonyKinds()...)),
	)
}

func generateRampTool() mcp.Tool {
	return mcp.NewTool("generate_ramp",
		mcp.WithDescription("Generate a 10-step lightness ramp (50 to 900) holding the base color's hue"),
		mcp.WithString("base", mcp.Required(), mcp.Description("Base hex color")),
	)
}

func generatePaletteTool() mcp.Tool {
	formats := make([]string, len(tokens.AllFormats))
	for i, f := range tokens.AllFormats {
		formats[i] = string(f)
	}
	return mcp.NewTool("generate_palette",
		mcp.WithDescription("Expand every member of a harmony into a ramp. With format set, returns the palette as design tokens in that format."),
		mcp.WithString("base", mcp.Required(), mcp.Description("Base hex color")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Harmony kind"), mcp.Enum(harmonyKinds()...)),
		mcp.WithString("format", mcp.Description("Optional token export format"), mcp.Enum(formats...)),
	)
}

func parseTokensTool() mcp.Tool {
	return mcp.NewTool("parse_tokens",
		mcp.WithDescription("Parse design tokens from JSON, CSS custom properties or SCSS variables. The format is detected."),
		mcp.WithString("input", mcp.Required(), mcp.Description("Token source text")),
		mcp.WithString("type", mcp.Description("Only return tokens of this type (color, dimension, number, fontFamily, fontWeight, string)")),
	)
}

func exportTokensTool() mcp.Tool {
	formats := make([]string, len(tokens.AllFormats))
	for i, f := range tokens.AllFormats {
		formats[i] = string(f)
	}
	return mcp.NewTool("export_tokens",
		mcp.WithDescription("Parse design tokens and render them in one output format"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Token source text")),
		mcp.WithString("format", mcp.Required(), mcp.Description("Output format"), mcp.Enum(formats...)),
	)
}

func exportAllTokensTool() mcp.Tool {
	return mcp.NewTool("export_all_tokens",
		mcp.WithDescription("Parse design tokens and render every output format, keyed by conventional file name"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Token source text")),
	)
}

func colorHistoryTool() mcp.Tool {
	return mcp.NewTool("color_history",
		mcp.WithDescription("List or clear recently converted colors, most recent first"),
		mcp.WithString("action", mcp.Description("list (default) or clear"), mcp.Enum("list", "clear")),
	)
}
