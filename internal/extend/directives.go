package extend

import (
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// extendDirectives rebuilds the existing directives in order, then appends
// the newly defined ones in declaration order. Names are not deduplicated.
func (e *extender) extendDirectives(existing []*schema.Directive, defs []*language.DirectiveDefinition) []*schema.Directive {
	out := make([]*schema.Directive, 0, len(existing)+len(defs))
	for _, d := range existing {
		out = append(out, &schema.Directive{
			Name:         d.Name,
			Description:  d.Description,
			Locations:    append([]string(nil), d.Locations...),
			Arguments:    e.extendArgs(d.Arguments),
			IsRepeatable: d.IsRepeatable,
			ASTNode:      d.ASTNode,
		})
	}
	return append(out, e.builder.BuildDirectives(defs)...)
}
