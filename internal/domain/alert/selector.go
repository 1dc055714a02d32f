package alert

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Overrides carries the optional per-selector fields that replace catalog
// defaults. Nil pointer means "keep the default".
type Overrides struct {
	Title               *string `yaml:"title,omitempty" json:"title,omitempty"`
	Filter              *string `yaml:"filter,omitempty" json:"filter,omitempty"`
	ViolationCloseTimer *int    `yaml:"violationCloseTimer,omitempty" json:"violation_close_timer,omitempty"`
	Enabled             *bool   `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// Selector is a user-supplied reference to an alert or alert set. It is a
// two-case union: a bare tag (set name or alert type) or an override object
// carrying a tag plus field overrides. A selector with an empty Tag is
// invalid and treated as unknown by the resolver.
type Selector struct {
	Tag       string
	Overrides *Overrides
}

// Bare reports whether the selector carries no overrides.
func (s Selector) Bare() bool { return s.Overrides == nil }

// String renders the selector for warning messages.
func (s Selector) String() string {
	if s.Tag == "" {
		return "<missing type>"
	}
	return s.Tag
}

// selectorObject mirrors the mapping form of a selector in YAML.
type selectorObject struct {
	Type                string  `yaml:"type"`
	Title               *string `yaml:"title"`
	Filter              *string `yaml:"filter"`
	ViolationCloseTimer *int    `yaml:"violationCloseTimer"`
	Enabled             *bool   `yaml:"enabled"`
}

// UnmarshalYAML decodes either form of a selector: a plain scalar is a bare
// tag, a mapping is a tag with overrides.
func (s *Selector) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var tag string
		if err := value.Decode(&tag); err != nil {
			return err
		}
		*s = Selector{Tag: tag}
		return nil

	case yaml.MappingNode:
		var obj selectorObject
		if err := value.Decode(&obj); err != nil {
			return err
		}
		sel := Selector{Tag: obj.Type}
		if obj.Title != nil || obj.Filter != nil || obj.ViolationCloseTimer != nil || obj.Enabled != nil {
			sel.Overrides = &Overrides{
				Title:               obj.Title,
				Filter:              obj.Filter,
				ViolationCloseTimer: obj.ViolationCloseTimer,
				Enabled:             obj.Enabled,
			}
		}
		*s = sel
		return nil

	default:
		return fmt.Errorf("alert selector must be a string or a mapping, got yaml node kind %d", value.Kind)
	}
}

// MarshalYAML renders the selector back in its shortest form.
func (s Selector) MarshalYAML() (interface{}, error) {
	if s.Bare() {
		return s.Tag, nil
	}
	obj := selectorObject{
		Type:                s.Tag,
		Title:               s.Overrides.Title,
		Filter:              s.Overrides.Filter,
		ViolationCloseTimer: s.Overrides.ViolationCloseTimer,
		Enabled:             s.Overrides.Enabled,
	}
	return obj, nil
}
