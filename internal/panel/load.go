package panel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a menu file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Menu is the on-disk shape of a sidebar tree.
type Menu[ID ~string, E any] struct {
	DefaultActive ID            `json:"defaultActive,omitempty" yaml:"defaultActive,omitempty"`
	Items         []Item[ID, E] `json:"items" yaml:"items"`
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("menu %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

// Decode parses a menu document. Duplicate ids and missing titles are kept
// as-is; only syntax and type errors fail.
func Decode[ID ~string, E any](data []byte, format Format) (Menu[ID, E], error) {
	var m Menu[ID, E]
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return Menu[ID, E]{}, fmt.Errorf("decode menu json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return Menu[ID, E]{}, fmt.Errorf("decode menu yaml: %w", err)
		}
	default:
		return Menu[ID, E]{}, fmt.Errorf("decode menu: unknown format %q", format)
	}
	return m, nil
}

// LoadFile reads and decodes a menu file, choosing the format by extension.
func LoadFile[ID ~string, E any](path string) (Menu[ID, E], error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Menu[ID, E]{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Menu[ID, E]{}, fmt.Errorf("read menu %s: %w", path, err)
	}
	m, err := Decode[ID, E](data, format)
	if err != nil {
		return Menu[ID, E]{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
