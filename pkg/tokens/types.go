// Package tokens parses design tokens from JSON/DTCG, CSS custom properties
// and SCSS variables into a flat TokenSet, and renders a TokenSet into
// platform export formats.
package tokens

// Type is the kind of value a token carries. It is decided once at parse
// time and generators treat it as authoritative.
type Type string

const (
	TypeColor      Type = "color"
	TypeDimension  Type = "dimension"
	TypeNumber     Type = "number"
	TypeFontFamily Type = "fontFamily"
	TypeFontWeight Type = "fontWeight"
	TypeString     Type = "string"
)

// knownTypes maps explicit type names found in JSON sources to a Type.
var knownTypes = map[string]Type{
	"color":      TypeColor,
	"dimension":  TypeDimension,
	"number":     TypeNumber,
	"fontFamily": TypeFontFamily,
	"fontWeight": TypeFontWeight,
	"string":     TypeString,
}

// ParseType returns the Type named by s, if any.
func ParseType(s string) (Type, bool) {
	t, ok := knownTypes[s]
	return t, ok
}

// Token is a single named design value.
type Token struct {
	// Name is the dotted path for JSON sources, or the bare variable name
	// for CSS/SCSS sources.
	Name string `json:"name"`

	// Value is the raw value text. References such as {color.primary.500}
	// are kept verbatim.
	Value string `json:"value"`

	Type Type     `json:"type"`
	Path []string `json:"path"`
}

// TokenSet is an ordered mapping from token name to Token.
//
// Iteration follows the order in which names first appeared. Setting a name
// that already exists replaces its token but keeps its position.
type TokenSet struct {
	order  []string
	tokens map[string]Token
}

// NewTokenSet returns an empty set.
func NewTokenSet() *TokenSet {
	return &TokenSet{tokens: make(map[string]Token)}
}

// Set adds or replaces a token.
func (s *TokenSet) Set(t Token) {
	if _, exists := s.tokens[t.Name]; !exists {
		s.order = append(s.order, t.Name)
	}
	s.tokens[t.Name] = t
}

// Get looks up a token by name.
func (s *TokenSet) Get(name string) (Token, bool) {
	t, ok := s.tokens[name]
	return t, ok
}

// Len returns the number of tokens.
func (s *TokenSet) Len() int {
	return len(s.order)
}

// Names returns the token names in order.
func (s *TokenSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns the tokens in order.
func (s *TokenSet) All() []Token {
	out := make([]Token, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.tokens[name])
	}
	return out
}

// Filter returns a new set holding only tokens of the given type.
func (s *TokenSet) Filter(t Type) *TokenSet {
	out := NewTokenSet()
	for _, tok := range s.All() {
		if tok.Type == t {
			out.Set(tok)
		}
	}
	return out
}

// Merge returns a new set with the tokens of s followed by those of other.
// Tokens in other win on name collisions.
func (s *TokenSet) Merge(other *TokenSet) *TokenSet {
	out := NewTokenSet()
	for _, tok := range s.All() {
		out.Set(tok)
	}
	if other != nil {
		for _, tok := range other.All() {
			out.Set(tok)
		}
	}
	return out
}
