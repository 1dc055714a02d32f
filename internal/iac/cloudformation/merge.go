package cloudformation

import "github.com/pratik-mahalle/alertforge/internal/domain/alert"

// MergeDeclarations merges generated alert declarations into the template's
// resource collection, key-wise, last write wins. Declaration keys are built
// to never collide with each other; colliding with a pre-existing template
// resource would mean the declaration was already merged on a previous run
// and is simply refreshed.
func MergeDeclarations(tpl *Template, decls map[string]alert.Declaration) {
	ensureResources(tpl)
	for key, d := range decls {
		tpl.Resources[key] = Resource{
			Type:       d.Type,
			Properties: d.Properties,
		}
	}
}
