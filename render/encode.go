// Package render turns catalog records into console, JSON or YAML output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
)

// ValidFormat reports whether format is a known output format
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatConsole, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// Encode writes v to w as JSON or YAML
func Encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
