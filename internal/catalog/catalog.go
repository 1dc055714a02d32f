// Package catalog holds the static registry of alert definitions and named
// alert sets, partitioned by resource category. The catalog is built once,
// never mutated, and passed by reference into the resolver so tests can
// substitute their own.
package catalog

import (
	"fmt"

	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
)

// Catalog is the immutable registry of alert definitions and sets.
type Catalog struct {
	definitions map[alert.Category]map[alert.Type]alert.Definition
	sets        map[alert.Category]map[string][]alert.Type
}

// New builds a catalog from explicit definition and set tables.
func New(defs map[alert.Category][]alert.Definition, sets map[alert.Category]map[string][]alert.Type) *Catalog {
	c := &Catalog{
		definitions: make(map[alert.Category]map[alert.Type]alert.Definition, len(defs)),
		sets:        sets,
	}
	for cat, list := range defs {
		byType := make(map[alert.Type]alert.Definition, len(list))
		for _, d := range list {
			byType[d.Type] = d
		}
		c.definitions[cat] = byType
	}
	return c
}

// Lookup returns the definition for a type tag within a category. A missing
// entry is a normal outcome, signalled by the bool.
func (c *Catalog) Lookup(category alert.Category, t alert.Type) (alert.Definition, bool) {
	d, ok := c.definitions[category][t]
	return d, ok
}

// ExpandSet returns the member type tags of a named set in declared order.
func (c *Catalog) ExpandSet(category alert.Category, name string) ([]alert.Type, bool) {
	members, ok := c.sets[category][name]
	return members, ok
}

// Definitions returns all definitions of a category in no particular order.
func (c *Catalog) Definitions(category alert.Category) []alert.Definition {
	byType := c.definitions[category]
	out := make([]alert.Definition, 0, len(byType))
	for _, d := range byType {
		out = append(out, d)
	}
	return out
}

// Sets returns the set names and members of a category.
func (c *Catalog) Sets(category alert.Category) map[string][]alert.Type {
	return c.sets[category]
}

// Validate asserts catalog consistency: every set member must resolve to a
// definition in the same category. Sets can therefore never reference other
// sets, which keeps expansion strictly two-level.
func (c *Catalog) Validate() error {
	for cat, sets := range c.sets {
		for name, members := range sets {
			for _, t := range members {
				if _, ok := c.definitions[cat][t]; !ok {
					return fmt.Errorf("alert set %q (%s): member %q is not a catalog definition", name, cat, t)
				}
			}
		}
	}
	return nil
}
