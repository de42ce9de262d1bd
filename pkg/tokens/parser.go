package tokens

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/buger/jsonparser"
)

// SourceFormat is a recognized token input format.
type SourceFormat string

const (
	SourceJSON SourceFormat = "json"
	SourceCSS  SourceFormat = "css"
	SourceSCSS SourceFormat = "scss"
)

var (
	cssPropertyPattern  = regexp.MustCompile(`--([\w.-]+)\s*:\s*([^;]+);`)
	scssVariablePattern = regexp.MustCompile(`\$([\w.-]+)\s*:\s*([^;]+);`)
)

// DetectFormat picks the source format of input. Checks run in order and the
// first match wins: a leading '{' means JSON, any "--" means CSS custom
// properties, any '$' means SCSS variables.
func DetectFormat(input string) (SourceFormat, error) {
	trimmed := strings.TrimSpace(input)
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return SourceJSON, nil
	case strings.Contains(trimmed, "--"):
		return SourceCSS, nil
	case strings.Contains(trimmed, "$"):
		return SourceSCSS, nil
	default:
		return "", &FormatError{}
	}
}

// Parse detects the format of input and flattens it into a TokenSet.
//
// Returns *FormatError when no format matches and *ParseError for malformed
// JSON. CSS and SCSS extraction is pattern based and never fails; a ';'
// inside a quoted value ends that value early.
func Parse(input string) (*TokenSet, error) {
	format, err := DetectFormat(input)
	if err != nil {
		return nil, err
	}

	switch format {
	case SourceJSON:
		return parseJSON([]byte(strings.TrimSpace(input)))
	case SourceCSS:
		return parseDeclarations(input, cssPropertyPattern), nil
	case SourceSCSS:
		return parseDeclarations(input, scssVariablePattern), nil
	}
	return nil, &FormatError{}
}

// parseDeclarations extracts name: value; pairs. Later names overwrite
// earlier ones.
func parseDeclarations(input string, pattern *regexp.Regexp) *TokenSet {
	set := NewTokenSet()
	for _, m := range pattern.FindAllStringSubmatch(input, -1) {
		name := m[1]
		value := strings.TrimSpace(m[2])
		set.Set(Token{
			Name:  name,
			Value: value,
			Type:  InferType(value),
			Path:  []string{name},
		})
	}
	return set
}

func parseJSON(data []byte) (*TokenSet, error) {
	var top any
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &ParseError{Format: SourceJSON, Err: err}
	}
	if _, ok := top.(map[string]any); !ok {
		return nil, &ParseError{Format: SourceJSON, Err: errors.New("top-level value must be an object")}
	}

	set := NewTokenSet()
	if err := walkGroup(data, nil, set); err != nil {
		return nil, &ParseError{Format: SourceJSON, Err: err}
	}
	return set, nil
}

// walkGroup visits the members of a group object in source order. Members
// holding a value key become tokens, other objects are recursed into, and
// anything else is dropped.
func walkGroup(data []byte, path []string, set *TokenSet) error {
	return jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name := string(key)
		if dataType != jsonparser.Object || strings.HasPrefix(name, "$") {
			return nil
		}

		childPath := make([]string, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = name

		tok, ok, err := tokenFromNode(value, childPath)
		if err != nil {
			return err
		}
		if ok {
			set.Set(tok)
			return nil
		}
		return walkGroup(value, childPath, set)
	})
}

func tokenFromNode(node []byte, path []string) (Token, bool, error) {
	raw, dataType, _, err := jsonparser.Get(node, "value")
	if dataType == jsonparser.NotExist {
		raw, dataType, _, err = jsonparser.Get(node, "$value")
	}
	if dataType == jsonparser.NotExist {
		return Token{}, false, nil
	}
	if err != nil {
		return Token{}, false, err
	}

	value := string(raw)
	if dataType == jsonparser.String {
		value, err = jsonparser.ParseString(raw)
		if err != nil {
			return Token{}, false, err
		}
	}

	typ, explicit := explicitType(node)
	if !explicit {
		typ = InferType(value)
	}

	return Token{
		Name:  strings.Join(path, "."),
		Value: value,
		Type:  typ,
		Path:  path,
	}, true, nil
}

func explicitType(node []byte) (Type, bool) {
	for _, key := range []string{"type", "$type"} {
		s, err := jsonparser.GetString(node, key)
		if err != nil {
			continue
		}
		if t, ok := ParseType(s); ok {
			return t, true
		}
	}
	return "", false
}
