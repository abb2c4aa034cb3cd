package extend

import (
	language "github.com/hanpama/schemaext/internal/language"
)

// collected partitions the definitions of a document by kind.
type collected struct {
	schemaDef        *language.SchemaDefinition
	schemaExtensions []*language.SchemaDefinition
	typeDefs         []*language.Definition
	// typeExtensions is keyed by target type name, whether the target is an
	// existing type or one defined by the same document.
	typeExtensions map[string][]*language.Definition
	directiveDefs  []*language.DirectiveDefinition
}

func collect(doc *language.Document) *collected {
	c := &collected{typeExtensions: make(map[string][]*language.Definition)}
	for _, node := range doc.Definitions {
		switch node.Kind {
		case language.SchemaDefinitionNode:
			c.schemaDef = node.Schema
		case language.SchemaExtensionNode:
			c.schemaExtensions = append(c.schemaExtensions, node.Schema)
		case language.TypeDefinitionNode:
			c.typeDefs = append(c.typeDefs, node.Type)
		case language.TypeExtensionNode:
			name := node.Type.Name
			c.typeExtensions[name] = append(c.typeExtensions[name], node.Type)
		case language.DirectiveDefinitionNode:
			c.directiveDefs = append(c.directiveDefs, node.Directive)
		}
	}
	return c
}

func (c *collected) empty() bool {
	return len(c.typeExtensions) == 0 &&
		len(c.typeDefs) == 0 &&
		len(c.directiveDefs) == 0 &&
		len(c.schemaExtensions) == 0 &&
		c.schemaDef == nil
}
