package tokens

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// remBase is the pixel size of 1rem used when converting to Android dp.
const remBase = 16

// themeEntry is one key/value pair in a Tailwind theme section.
type themeEntry struct {
	key   string
	value string
}

// colorFamily groups color shades under one Tailwind color name.
type colorFamily struct {
	name   string
	shades []themeEntry
}

// tailwindTheme collects theme.extend sections in first-seen order.
type tailwindTheme struct {
	colors     []any // themeEntry or *colorFamily
	families   map[string]*colorFamily
	spacing    []themeEntry
	fontSize   []themeEntry
	fontFamily []themeEntry
	fontWeight []themeEntry
}

const tailwindUsage = `
// Usage examples:
//   <div class="bg-primary-500 text-primary-50">...</div>
//   <div class="p-md m-sm">...</div>
//   <p class="text-body font-sans">...</p>
`

func lastSegment(t Token) string {
	if len(t.Path) == 0 {
		return t.Name
	}
	return t.Path[len(t.Path)-1]
}

func buildTailwindTheme(set *TokenSet) *tailwindTheme {
	theme := &tailwindTheme{families: make(map[string]*colorFamily)}

	for _, t := range set.All() {
		switch t.Type {
		case TypeColor:
			if len(t.Path) < 2 {
				theme.colors = append(theme.colors, themeEntry{key: t.Name, value: t.Value})
				continue
			}
			family, shade := t.Path[len(t.Path)-2], t.Path[len(t.Path)-1]
			fam, ok := theme.families[family]
			if !ok {
				fam = &colorFamily{name: family}
				theme.families[family] = fam
				theme.colors = append(theme.colors, fam)
			}
			fam.shades = append(fam.shades, themeEntry{key: shade, value: t.Value})

		case TypeDimension:
			entry := themeEntry{key: lastSegment(t), value: t.Value}
			lower := strings.ToLower(t.Name)
			switch {
			case containsAny(lower, "spacing", "space", "margin", "padding"):
				theme.spacing = append(theme.spacing, entry)
			case strings.Contains(lower, "font") && strings.Contains(lower, "size"):
				theme.fontSize = append(theme.fontSize, entry)
			default:
				theme.spacing = append(theme.spacing, entry)
			}

		case TypeFontFamily:
			theme.fontFamily = append(theme.fontFamily, themeEntry{key: lastSegment(t), value: t.Value})

		case TypeFontWeight:
			theme.fontWeight = append(theme.fontWeight, themeEntry{key: lastSegment(t), value: t.Value})
		}
	}
	return theme
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func jsSingleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func writeEntries(b *strings.Builder, section string, entries []themeEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "      %s: {\n", section)
	for _, e := range entries {
		fmt.Fprintf(b, "        %s: %s,\n", jsSingleQuote(e.key), jsSingleQuote(e.value))
	}
	b.WriteString("      },\n")
}

func generateTailwind(set *TokenSet) string {
	theme := buildTailwindTheme(set)

	var b strings.Builder
	b.WriteString("/** @type {import('tailwindcss').Config} */\n")
	b.WriteString("module.exports = {\n  theme: {\n    extend: {\n")

	if len(theme.colors) > 0 {
		b.WriteString("      colors: {\n")
		for _, c := range theme.colors {
			switch c := c.(type) {
			case themeEntry:
				fmt.Fprintf(&b, "        %s: %s,\n", jsSingleQuote(c.key), jsSingleQuote(c.value))
			case *colorFamily:
				fmt.Fprintf(&b, "        %s: {\n", jsSingleQuote(c.name))
				for _, s := range c.shades {
					fmt.Fprintf(&b, "          %s: %s,\n", jsSingleQuote(s.key), jsSingleQuote(s.value))
				}
				b.WriteString("        },\n")
			}
		}
		b.WriteString("      },\n")
	}
	writeEntries(&b, "spacing", theme.spacing)
	writeEntries(&b, "fontSize", theme.fontSize)
	writeEntries(&b, "fontFamily", theme.fontFamily)
	writeEntries(&b, "fontWeight", theme.fontWeight)

	b.WriteString("    },\n  },\n};\n")
	b.WriteString(tailwindUsage)
	return b.String()
}

// camelName turns "color.primary-500" into "colorPrimary500".
func camelName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(lowerFirst(p))
			continue
		}
		b.WriteString(upperFirst(p))
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	if unicode.IsDigit(rune(out[0])) {
		return "_" + out
	}
	return out
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func generateIOS(set *TokenSet) string {
	var b strings.Builder
	b.WriteString("import SwiftUI\n\n")
	b.WriteString("// Color(hex:) is expected to be provided by a Color extension.\n")
	b.WriteString("enum DesignTokens {\n")
	for _, t := range set.All() {
		name := camelName(t.Name)
		if t.Type == TypeColor {
			fmt.Fprintf(&b, "    static let %s = Color(hex: %s)\n", name, strconv.Quote(t.Value))
			continue
		}
		fmt.Fprintf(&b, "    static let %s = %s\n", name, strconv.Quote(t.Value))
	}
	b.WriteString("}\n")
	return b.String()
}

// androidDimension converts a dimension value to an Android resource value.
// rem values become dp at 16dp per rem, bare integers get a dp suffix and
// everything else, px included, passes through.
func androidDimension(value string) string {
	v := strings.TrimSpace(value)
	if strings.HasSuffix(v, "rem") {
		if n, err := strconv.ParseFloat(strings.TrimSuffix(v, "rem"), 64); err == nil {
			return fmt.Sprintf("%ddp", int(math.Round(n*remBase)))
		}
		return v
	}
	if integerPattern.MatchString(v) {
		return v + "dp"
	}
	return v
}

func resourceName(name string) string {
	return strings.ToLower(identName(name))
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}

const xmlDeclaration = "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n"

// writeResources appends one resource file. Each file starts with its own
// XML declaration so the sections can be split apart as-is.
func writeResources(b *strings.Builder, file, element string, tokens []Token, convert func(string) string) {
	if len(tokens) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(xmlDeclaration)
	fmt.Fprintf(b, "<!-- %s -->\n<resources>\n", file)
	for _, t := range tokens {
		fmt.Fprintf(b, "    <%s name=\"%s\">%s</%s>\n", element, resourceName(t.Name), xmlEscape(convert(t.Value)), element)
	}
	b.WriteString("</resources>\n")
}

func generateAndroid(set *TokenSet) string {
	var colors, dimens, strs []Token
	for _, t := range set.All() {
		switch t.Type {
		case TypeColor:
			colors = append(colors, t)
		case TypeDimension:
			dimens = append(dimens, t)
		default:
			strs = append(strs, t)
		}
	}

	identity := func(s string) string { return s }

	var b strings.Builder
	writeResources(&b, "colors.xml", "color", colors, identity)
	writeResources(&b, "dimens.xml", "dimen", dimens, androidDimension)
	writeResources(&b, "strings.xml", "string", strs, identity)
	return b.String()
}
