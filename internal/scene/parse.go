package scene

import (
	"encoding/json"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Parse decodes a snapshot. Properties the snapshot omits take the host's
// defaults rather than zero.
func Parse(data []byte, format string) (*Scene, error) {
	switch format {
	case FormatJSON:
		return ParseJSON(data)
	case FormatYAML:
		return ParseYAML(data)
	case FormatTOML:
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
}

func ParseJSON(data []byte) (*Scene, error) {
	var w wireScene
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid scene JSON: %w", err)
	}
	return w.scene(), nil
}

func ParseYAML(data []byte) (*Scene, error) {
	var w wireScene
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid scene YAML: %w", err)
	}
	return w.scene(), nil
}

func ParseTOML(data []byte) (*Scene, error) {
	var w wireScene
	if err := toml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("invalid scene TOML: %w", err)
	}
	return w.scene(), nil
}

func Marshal(s *Scene, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatTOML:
		return toml.Marshal(s)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", format)
	}
}
