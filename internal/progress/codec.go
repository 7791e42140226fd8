package progress

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Encode serializes the table as a JSON object keyed by level ID.
func Encode(t Table) (string, error) {
	raw := make(map[string]*LevelProgress, len(t))
	for id, p := range t {
		raw[strconv.Itoa(id)] = p
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode progress: %w", err)
	}
	return string(data), nil
}

// Decode parses a blob written by Encode.
func Decode(blob string) (Table, error) {
	var raw map[string]*LevelProgress
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	t := make(Table, len(raw))
	for k, p := range raw {
		id, err := strconv.Atoi(k)
		if err != nil || id < 1 {
			return nil, fmt.Errorf("decode progress: bad level key %q", k)
		}
		if p == nil {
			p = &LevelProgress{}
		}
		t[id] = p
	}
	return t, nil
}
