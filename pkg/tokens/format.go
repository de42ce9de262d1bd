package tokens

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Format is an export format supported by Generate.
type Format string

const (
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatJS       Format = "js"
	FormatJSON     Format = "json"
	FormatTailwind Format = "tailwind"
	FormatIOS      Format = "ios"
	FormatAndroid  Format = "android"
)

// AllFormats lists every export format in batch-export order.
var AllFormats = []Format{
	FormatCSS,
	FormatSCSS,
	FormatJS,
	FormatJSON,
	FormatTailwind,
	FormatIOS,
	FormatAndroid,
}

// maxSuggestDistance bounds how far a misspelled format name may be from a
// known one before no suggestion is offered.
const maxSuggestDistance = 3

// ParseFormat validates a format name. Unknown names yield an
// *UnknownFormatError carrying the closest known name, if one is near.
func ParseFormat(name string) (Format, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range AllFormats {
		if string(f) == n {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Name: name, Suggestion: suggestFormat(n)}
}

func suggestFormat(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, f := range AllFormats {
		if d := levenshtein.ComputeDistance(name, string(f)); d < bestDist {
			best, bestDist = string(f), d
		}
	}
	return best
}

// FileName is the conventional file name used when a format is exported to
// disk or packaged by GenerateAll.
func (f Format) FileName() string {
	switch f {
	case FormatCSS:
		return "tokens.css"
	case FormatSCSS:
		return "_tokens.scss"
	case FormatJS:
		return "tokens.js"
	case FormatJSON:
		return "tokens.json"
	case FormatTailwind:
		return "tailwind.config.js"
	case FormatIOS:
		return "DesignTokens.swift"
	case FormatAndroid:
		return "tokens.xml"
	}
	return string(f)
}
