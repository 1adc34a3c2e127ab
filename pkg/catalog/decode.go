package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Decoder parses raw resource bytes into a single object-rooted document.
// Nested objects form the path hierarchy; leaf values intended for lookup
// must be strings.
type Decoder func(data []byte) (map[string]any, error)

// DecodeYAML decodes a YAML resource. Since YAML is a superset of JSON,
// this also accepts JSON input.
func DecodeYAML(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document has no root object")
	}
	return doc, nil
}

// DecodeJSON decodes a JSON resource.
func DecodeJSON(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document has no root object")
	}
	return doc, nil
}

// DecodeTOML decodes a TOML resource.
func DecodeTOML(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
