// Package presets provides starter token sets embedded in the binary.
package presets

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/gnana997/huekit/pkg/tokens"
)

// Base is the default preset name.
const Base = "base"

//go:embed base.tokens.json
var baseJSON []byte

var byName = map[string][]byte{
	Base: baseJSON,
}

// Names lists the available presets.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Raw returns the source text of a preset.
func Raw(name string) ([]byte, error) {
	data, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, Names())
	}
	return data, nil
}

// Load parses a preset into a TokenSet.
func Load(name string) (*tokens.TokenSet, error) {
	data, err := Raw(name)
	if err != nil {
		return nil, err
	}
	return tokens.Parse(string(data))
}
