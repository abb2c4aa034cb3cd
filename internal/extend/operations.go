package extend

import (
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// resolveOperationTypes sets the root types of cfg. Roots default to those of
// s, resolved in the new table. Declarations of the schema definition and
// then of each schema extension override them in order.
func (e *extender) resolveOperationTypes(cfg *schema.Config, s *schema.Schema, c *collected) {
	root := func(name string) string {
		if name == "" {
			return ""
		}
		return e.replaceNamedType(name)
	}
	cfg.Query = root(s.QueryType)
	cfg.Mutation = root(s.MutationType)
	cfg.Subscription = root(s.SubscriptionType)

	var nodes []*language.SchemaDefinition
	if c.schemaDef != nil {
		nodes = append(nodes, c.schemaDef)
	}
	nodes = append(nodes, c.schemaExtensions...)

	for op, t := range e.builder.GetOperationTypes(nodes) {
		switch op {
		case language.Query:
			cfg.Query = t.Name
		case language.Mutation:
			cfg.Mutation = t.Name
		case language.Subscription:
			cfg.Subscription = t.Name
		}
	}
}
