// Package assets carries data files compiled into the binary.
package assets

import (
	_ "embed"

	"github.com/tiot2/wmt/pkg/wmt"
)

//go:embed maps/default.wmt
var defaultMap []byte

// DefaultMapName is the filename the built-in map is written under.
const DefaultMapName = "default.wmt"

// DefaultMapSource returns the raw text of the built-in demo map.
func DefaultMapSource() []byte {
	out := make([]byte, len(defaultMap))
	copy(out, defaultMap)
	return out
}

// DefaultMap parses the built-in demo map.
func DefaultMap() (*wmt.Document, error) {
	return wmt.Parse(defaultMap)
}
