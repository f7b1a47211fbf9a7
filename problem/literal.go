// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Literal is a numeric literal kept as text so that "1/3" and "0.1" reach the
// number kind unchanged. Files may spell it as a number or a string.
type Literal string

// UnmarshalJSON accepts a JSON number or string.
func (l *Literal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = Literal(strings.TrimSpace(s))

		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("literal %s: %w", data, ErrSyntax)
	}
	*l = Literal(n.String())

	return nil
}

// UnmarshalYAML accepts any scalar node.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: literal must be a scalar: %w", node.Line, ErrSyntax)
	}
	*l = Literal(strings.TrimSpace(node.Value))

	return nil
}

// literals converts literals to plain strings.
func literals(ls []Literal) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = string(l)
	}

	return out
}
