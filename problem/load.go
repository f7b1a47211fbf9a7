// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format names a problem file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("file %q: %w", path, ErrFormat)
	}
}

// Load reads a problem from a YAML or JSON file, substituting ${VAR}
// references from the environment before decoding.
func Load(path string) (*Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes, normalizes and validates a problem document.
func Parse(data []byte, format Format) (*Problem, error) {
	content := []byte(substituteEnvVars(string(data)))

	var p Problem
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &p); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(content, &p); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrFormat)
	}

	if err := p.Normalize(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// Unset variables become empty; an unterminated "${" is left as is.
func substituteEnvVars(content string) string {
	var sb strings.Builder
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		sb.WriteString(content[:start])
		sb.WriteString(os.Getenv(content[start+2 : end]))
		content = content[end+1:]
	}
	sb.WriteString(content)

	return sb.String()
}
