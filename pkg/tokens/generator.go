package tokens

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Generate renders set in the given format.
//
// Names are rewritten to fit the target's identifier rules. Values are
// emitted verbatim: references such as {color.primary.500} are not
// resolved.
func Generate(format Format, set *TokenSet) (string, error) {
	if set == nil {
		set = NewTokenSet()
	}

	switch format {
	case FormatCSS:
		return generateCSS(set), nil
	case FormatSCSS:
		return generateSCSS(set), nil
	case FormatJS:
		return generateJS(set), nil
	case FormatJSON:
		return generateJSON(set), nil
	case FormatTailwind:
		return generateTailwind(set), nil
	case FormatIOS:
		return generateIOS(set), nil
	case FormatAndroid:
		return generateAndroid(set), nil
	default:
		return "", &UnknownFormatError{Name: string(format), Suggestion: suggestFormat(string(format))}
	}
}

// GenerateAll renders every format and returns the results keyed by
// Format.FileName.
func GenerateAll(set *TokenSet) (map[string]string, error) {
	out := make(map[string]string, len(AllFormats))
	for _, f := range AllFormats {
		content, err := Generate(f, set)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", f, err)
		}
		out[f.FileName()] = content
	}
	return out, nil
}

func dashName(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}

func identName(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}

func generateCSS(set *TokenSet) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, t := range set.All() {
		fmt.Fprintf(&b, "  --%s: %s;\n", dashName(t.Name), t.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

func generateSCSS(set *TokenSet) string {
	var b strings.Builder
	for _, t := range set.All() {
		fmt.Fprintf(&b, "$%s: %s;\n", dashName(t.Name), t.Value)
	}
	return b.String()
}

func generateJS(set *TokenSet) string {
	var b strings.Builder
	b.WriteString("export const tokens = {\n")
	for _, t := range set.All() {
		fmt.Fprintf(&b, "  %s: %s,\n", identName(t.Name), strconv.Quote(t.Value))
	}
	b.WriteString("};\n\nexport default tokens;\n")
	return b.String()
}

func generateJSON(set *TokenSet) string {
	if set.Len() == 0 {
		return "{}\n"
	}
	var b strings.Builder
	b.WriteString("{\n")
	all := set.All()
	for i, t := range all {
		fmt.Fprintf(&b, "  %s: %s", jsonString(t.Name), jsonString(t.Value))
		if i < len(all)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}

func jsonString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(data)
}
