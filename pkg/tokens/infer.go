package tokens

import (
	"regexp"
	"strings"
)

var (
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	dimensionPattern = regexp.MustCompile(`^-?(?:\d+|\d*\.\d+)(?:px|rem|em|%)$`)
	integerPattern   = regexp.MustCompile(`^\d+$`)
)

// InferType classifies a raw value by its lexical shape. Rules are checked
// in order and the first match wins.
func InferType(value string) Type {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch {
	case hexColorPattern.MatchString(v),
		strings.HasPrefix(lower, "rgb"),
		strings.HasPrefix(lower, "hsl"),
		strings.HasPrefix(lower, "oklch"),
		strings.Contains(lower, "color"):
		return TypeColor
	case dimensionPattern.MatchString(v):
		return TypeDimension
	case integerPattern.MatchString(v):
		return TypeNumber
	case strings.Contains(lower, "font"), strings.Contains(lower, "family"):
		return TypeFontFamily
	default:
		return TypeString
	}
}
