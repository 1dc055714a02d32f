// Package resolver turns user-supplied alert selector lists into concrete
// alert specifications backed by the catalog.
package resolver

import (
	"fmt"

	"github.com/pratik-mahalle/alertforge/internal/catalog"
	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
)

// ReportFunc receives one warning message per unknown selector. The resolver
// never depends on its behaviour; nil disables reporting.
type ReportFunc func(msg string)

// Resolver expands alert sets, looks up definitions and applies selector
// overrides. It is stateless across calls and safe for concurrent use.
type Resolver struct {
	catalog           *catalog.Catalog
	defaultCloseTimer int // hours, 0 keeps the catalog default
	report            ReportFunc
}

// New creates a resolver over the given catalog. defaultCloseTimer, when
// positive, replaces the catalog's violation-close-timer default before
// selector overrides apply.
func New(cat *catalog.Catalog, defaultCloseTimer int, report ReportFunc) *Resolver {
	if report == nil {
		report = func(string) {}
	}
	return &Resolver{catalog: cat, defaultCloseTimer: defaultCloseTimer, report: report}
}

// Resolve expands and resolves selectors for one category. Unknown selectors
// are reported and skipped, duplicates (sets legitimately overlap) are
// dropped silently, first occurrence wins. Output order follows first-resolved
// order and is deterministic for identical input.
func (r *Resolver) Resolve(category alert.Category, selectors []alert.Selector) []alert.Resolved {
	resolved := make([]alert.Resolved, 0, len(selectors))
	seen := make(map[alert.Type]bool, len(selectors))

	for _, sel := range selectors {
		if sel.Tag == "" {
			r.report(fmt.Sprintf("unknown alert selector %s for category %s, skipping", sel, category))
			continue
		}

		// A tag naming a set expands in place; members inherit the
		// selector's overrides.
		if members, ok := r.catalog.ExpandSet(category, sel.Tag); ok {
			for _, t := range members {
				r.appendResolved(&resolved, seen, category, t, sel)
			}
			continue
		}

		if !r.appendResolved(&resolved, seen, category, alert.Type(sel.Tag), sel) {
			r.report(fmt.Sprintf("unknown alert selector %s for category %s, skipping", sel, category))
		}
	}

	return resolved
}

// appendResolved looks up one type tag and appends the merged result. It
// returns false only when the tag is not in the catalog; duplicates return
// true without appending.
func (r *Resolver) appendResolved(out *[]alert.Resolved, seen map[alert.Type]bool, category alert.Category, t alert.Type, sel alert.Selector) bool {
	def, ok := r.catalog.Lookup(category, t)
	if !ok {
		return false
	}
	if seen[t] {
		return true
	}
	seen[t] = true

	if r.defaultCloseTimer > 0 {
		def.ViolationCloseTimer = r.defaultCloseTimer
	}
	if o := sel.Overrides; o != nil {
		if o.Title != nil {
			def.Title = *o.Title
		}
		if o.Filter != nil {
			def.Filter = *o.Filter
		}
		if o.ViolationCloseTimer != nil {
			def.ViolationCloseTimer = *o.ViolationCloseTimer
		}
		if o.Enabled != nil {
			def.Enabled = *o.Enabled
		}
	}

	*out = append(*out, alert.Resolved{Definition: def})
	return true
}
