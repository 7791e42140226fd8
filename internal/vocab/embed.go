package vocab

import (
	_ "embed"
)

//go:embed data/vocabulary.json
var bundled []byte

// Default returns the vocabulary bundled with the binary.
func Default() (*Vocabulary, error) {
	return Parse(bundled, FormatJSON)
}

// Resolve loads path when set and falls back to the bundled vocabulary.
func Resolve(path string) (*Vocabulary, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
