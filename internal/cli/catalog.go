package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/alertforge/internal/catalog"
	"github.com/pratik-mahalle/alertforge/internal/domain/alert"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the built-in alert catalog",
	}

	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogSetsCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alert definitions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			categories := alert.Categories()
			if category != "" {
				c := alert.Category(category)
				if !c.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				categories = []alert.Category{c}
			}

			if getOutputFormat() != "table" {
				out := make(map[string][]alert.Definition, len(categories))
				for _, c := range categories {
					out[string(c)] = sortedDefinitions(cat, c)
				}
				return printOutput(out)
			}

			table := NewTable("CATEGORY", "TYPE", "TITLE", "ENABLED", "THRESHOLD")
			for _, c := range categories {
				for _, d := range sortedDefinitions(cat, c) {
					table.AddRow(
						string(c),
						string(d.Type),
						d.Title,
						fmt.Sprintf("%t", d.Enabled),
						fmt.Sprintf("%s %g", d.Comparison, d.CriticalThreshold),
					)
				}
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "restrict to one category")

	return cmd
}

func newCatalogSetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sets",
		Short: "List named alert sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			if getOutputFormat() != "table" {
				out := make(map[string]map[string][]alert.Type)
				for _, c := range alert.Categories() {
					if sets := cat.Sets(c); len(sets) > 0 {
						out[string(c)] = sets
					}
				}
				return printOutput(out)
			}

			table := NewTable("CATEGORY", "SET", "MEMBERS")
			for _, c := range alert.Categories() {
				sets := cat.Sets(c)
				names := make([]string, 0, len(sets))
				for name := range sets {
					names = append(names, name)
				}
				sort.Strings(names)
				for _, name := range names {
					members := make([]string, 0, len(sets[name]))
					for _, t := range sets[name] {
						members = append(members, string(t))
					}
					table.AddRow(string(c), name, strings.Join(members, ", "))
				}
			}
			table.Render()
			return nil
		},
	}
}

func sortedDefinitions(cat *catalog.Catalog, c alert.Category) []alert.Definition {
	defs := cat.Definitions(c)
	sort.Slice(defs, func(i, j int) bool { return defs[i].Type < defs[j].Type })
	return defs
}
