package imports

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies an import document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath selects the decode format from a file extension. Anything
// that is not .yaml or .yml decodes as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFile reads and decodes an import document. A file that does not
// decode, or whose top level is not a mapping, is fatal: there is nowhere to
// look for collections.
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file %s: %w", path, err)
	}
	doc, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse import file %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes an import document in the given format.
func Parse(data []byte, format Format) (map[string]any, error) {
	var doc map[string]any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	}
	if doc == nil {
		return nil, errors.New("document is empty")
	}
	return doc, nil
}
