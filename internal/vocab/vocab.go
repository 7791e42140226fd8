// Package vocab loads the leveled vocabulary document the quiz draws from.
package vocab

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyVocabulary is returned when a document has no levels.
	ErrEmptyVocabulary = errors.New("vocabulary has no levels")

	// ErrUnknownLevel is returned when a level ID is not in the vocabulary.
	ErrUnknownLevel = errors.New("unknown level")
)

// WordPair is a term and its translation.
type WordPair struct {
	Term        string `json:"french" yaml:"french"`
	Translation string `json:"korean" yaml:"korean"`
}

// Level is a numbered, themed group of word pairs.
type Level struct {
	ID    int        `json:"level" yaml:"level"`
	Theme string     `json:"theme" yaml:"theme"`
	Words []WordPair `json:"words" yaml:"words"`
}

// Vocabulary is the full ordered set of levels. It is also the document
// shape on disk: {"levels": [...]}.
type Vocabulary struct {
	Levels []Level `json:"levels" yaml:"levels"`
}

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension. Unknown
// extensions are treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads and validates a vocabulary document from disk.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	v, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return v, nil
}

// Parse decodes and validates a document.
func Parse(data []byte, format Format) (*Vocabulary, error) {
	v := &Vocabulary{}
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return nil, fmt.Errorf("decode vocabulary: %w", err)
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode writes the document in the given format.
func (v *Vocabulary) Encode(format Format) ([]byte, error) {
	if format == FormatYAML {
		return yaml.Marshal(v)
	}
	return json.MarshalIndent(v, "", "  ")
}

// Validate checks that level IDs are dense starting at 1 and that every
// pair has both sides filled in.
func (v *Vocabulary) Validate() error {
	if len(v.Levels) == 0 {
		return ErrEmptyVocabulary
	}
	for i, lvl := range v.Levels {
		if lvl.ID != i+1 {
			return fmt.Errorf("level at position %d has id %d, want %d", i, lvl.ID, i+1)
		}
		for j, w := range lvl.Words {
			if strings.TrimSpace(w.Term) == "" || strings.TrimSpace(w.Translation) == "" {
				return fmt.Errorf("level %d word %d: term and translation are required", lvl.ID, j)
			}
		}
	}
	return nil
}

// Level returns the level with the given ID.
func (v *Vocabulary) Level(id int) (Level, error) {
	if id < 1 || id > len(v.Levels) {
		return Level{}, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}
	return v.Levels[id-1], nil
}

// LevelCount returns the number of levels.
func (v *Vocabulary) LevelCount() int {
	return len(v.Levels)
}

// WordCount returns the total number of pairs across levels.
func (v *Vocabulary) WordCount() int {
	n := 0
	for _, lvl := range v.Levels {
		n += len(lvl.Words)
	}
	return n
}
