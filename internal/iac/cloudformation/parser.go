// Package cloudformation reads and writes compiled CloudFormation templates.
// Templates are treated as opaque input: the tool only reads resource types
// and properties, merges generated declarations in, and writes the result
// back in the original format.
package cloudformation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseFile parses a template file, JSON or YAML by extension. Files with an
// unknown extension are tried as JSON first, then YAML.
func ParseFile(filename string) (*Template, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return ParseJSON(content)
	case ".yaml", ".yml":
		return ParseYAML(content)
	default:
		tpl, err := ParseJSON(content)
		if err != nil {
			return ParseYAML(content)
		}
		return tpl, nil
	}
}

// ParseJSON parses a JSON template.
func ParseJSON(content []byte) (*Template, error) {
	var tpl Template
	if err := json.Unmarshal(content, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse JSON template: %w", err)
	}
	ensureResources(&tpl)
	return &tpl, nil
}

// ParseYAML parses a YAML template.
func ParseYAML(content []byte) (*Template, error) {
	var tpl Template
	if err := yaml.Unmarshal(content, &tpl); err != nil {
		return nil, fmt.Errorf("failed to parse YAML template: %w", err)
	}
	ensureResources(&tpl)
	return &tpl, nil
}

func ensureResources(tpl *Template) {
	if tpl.Resources == nil {
		tpl.Resources = make(map[string]Resource)
	}
}

// WriteFile writes the template back, JSON or YAML by extension (JSON by
// default).
func WriteFile(filename string, tpl *Template) error {
	var (
		content []byte
		err     error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		content, err = yaml.Marshal(tpl)
	default:
		content, err = json.MarshalIndent(tpl, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

// ResourcesByType returns the logical IDs of resources of one type.
func ResourcesByType(tpl *Template, resourceType string) []string {
	ids := make([]string, 0)
	for id, res := range tpl.Resources {
		if res.Type == resourceType {
			ids = append(ids, id)
		}
	}
	return ids
}
