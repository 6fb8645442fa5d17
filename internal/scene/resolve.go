package scene

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DBPrefix marks an input as the name of a snapshot stored in the database.
const DBPrefix = "db:"

func Resolve(input string, connStr string, label string) (*Scene, error) {
	if name, ok := strings.CutPrefix(input, DBPrefix); ok {
		if name == "" {
			return nil, fmt.Errorf("missing snapshot name after %q", DBPrefix)
		}
		if connStr == "" {
			return nil, fmt.Errorf("database snapshot %q requires a database connection", name)
		}
		return Fetch(context.Background(), connStr, name)
	}

	data, err := readInput(input, label)
	if err != nil {
		return nil, err
	}

	format := DetectFormat(data, input)
	if format == "" {
		return nil, fmt.Errorf("unable to detect %sinput format: expected JSON, YAML or TOML snapshot, or .json/.yaml/.toml file", label)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readInput(input string, label string) ([]byte, error) {
	switch input {
	case "":
		return readInteractive(label)
	case "-":
		return io.ReadAll(os.Stdin)
	default:
		return os.ReadFile(input)
	}
}

func readInteractive(label string) ([]byte, error) {
	fmt.Printf("Paste %sscene snapshot (JSON, YAML or TOML)", label)
	if runtime.GOOS == "windows" {
		fmt.Print(" (Ctrl+Z, Enter to submit)\n")
	} else {
		fmt.Print(" (Ctrl+D to submit)\n")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(data))

	if strings.HasPrefix(trimmed, "{") && !json.Valid(data) {
		return nil, fmt.Errorf("input appears truncated; for large inputs use: scenelint scan <file>")
	}

	return data, nil
}

// DetectFormat picks a snapshot format from the file extension, falling back
// to the content. It returns "" when neither gives a clue.
func DetectFormat(data []byte, filename string) string {
	if f := FormatFromPath(filename); f != "" {
		return f
	}

	trimmed := strings.TrimSpace(string(data))

	if strings.HasPrefix(trimmed, "{") {
		return FormatJSON
	}

	if strings.HasPrefix(trimmed, "---") || strings.HasPrefix(trimmed, "name:") ||
		strings.HasPrefix(trimmed, "objects:") || strings.HasPrefix(trimmed, "collection:") {
		return FormatYAML
	}

	if strings.HasPrefix(trimmed, "name =") || strings.HasPrefix(trimmed, "[[objects]]") ||
		strings.HasPrefix(trimmed, "[collection]") {
		return FormatTOML
	}

	return ""
}

func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	}
	return ""
}

// Save writes the snapshot in the format implied by the path's extension.
func Save(path string, s *Scene) error {
	format := FormatFromPath(path)
	if format == "" {
		return fmt.Errorf("cannot infer snapshot format from %s", path)
	}

	data, err := Marshal(s, format)
	if err != nil {
		return fmt.Errorf("marshaling scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene %s: %w", path, err)
	}
	return nil
}
