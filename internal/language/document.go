package language

import (
	"sort"
	"strings"
)

// NodeKind classifies a top-level definition of an SDL document.
type NodeKind string

const (
	SchemaDefinitionNode    NodeKind = "SchemaDefinition"
	SchemaExtensionNode     NodeKind = "SchemaExtension"
	TypeDefinitionNode      NodeKind = "TypeDefinition"
	TypeExtensionNode       NodeKind = "TypeExtension"
	DirectiveDefinitionNode NodeKind = "DirectiveDefinition"
)

// DefinitionNode is one top-level definition of a Document. Exactly one of
// Schema, Type and Directive is set, depending on Kind.
type DefinitionNode struct {
	Kind      NodeKind
	Schema    *SchemaDefinition
	Type      *Definition
	Directive *DirectiveDefinition
}

// Name returns the defined or extended name. Schema nodes have no name.
func (n *DefinitionNode) Name() string {
	switch n.Kind {
	case TypeDefinitionNode, TypeExtensionNode:
		return n.Type.Name
	case DirectiveDefinitionNode:
		return n.Directive.Name
	}
	return ""
}

// Position returns the source position of the node, or nil when unknown.
func (n *DefinitionNode) Position() *Position {
	switch n.Kind {
	case SchemaDefinitionNode, SchemaExtensionNode:
		return n.Schema.Position
	case TypeDefinitionNode, TypeExtensionNode:
		return n.Type.Position
	case DirectiveDefinitionNode:
		return n.Directive.Position
	}
	return nil
}

// Document is an ordered sequence of SDL definition nodes.
type Document struct {
	Definitions []*DefinitionNode
}

// NewDocument flattens a parsed SchemaDocument into a Document. gqlparser
// groups definitions by kind, so the nodes are re-sorted by source offset to
// restore document order.
func NewDocument(sd *SchemaDocument) *Document {
	doc := &Document{}
	if sd == nil {
		return doc
	}
	for _, def := range sd.Schema {
		doc.Definitions = append(doc.Definitions, &DefinitionNode{Kind: SchemaDefinitionNode, Schema: def})
	}
	for _, def := range sd.SchemaExtension {
		doc.Definitions = append(doc.Definitions, &DefinitionNode{Kind: SchemaExtensionNode, Schema: def})
	}
	for _, def := range sd.Definitions {
		doc.Definitions = append(doc.Definitions, &DefinitionNode{Kind: TypeDefinitionNode, Type: def})
	}
	for _, def := range sd.Extensions {
		doc.Definitions = append(doc.Definitions, &DefinitionNode{Kind: TypeExtensionNode, Type: def})
	}
	for _, def := range sd.Directives {
		doc.Definitions = append(doc.Definitions, &DefinitionNode{Kind: DirectiveDefinitionNode, Directive: def})
	}
	sort.SliceStable(doc.Definitions, func(i, j int) bool {
		return offset(doc.Definitions[i]) < offset(doc.Definitions[j])
	})
	return doc
}

func offset(n *DefinitionNode) int {
	if pos := n.Position(); pos != nil {
		return pos.Start
	}
	return 0
}

// CommentDescription turns a block of leading "#" comments into a description,
// dedented the same way as a block string. It returns "" for an empty group.
func CommentDescription(group *CommentGroup) string {
	if group == nil || len(group.List) == 0 {
		return ""
	}
	lines := make([]string, 1, len(group.List)+1)
	for _, c := range group.List {
		lines = append(lines, strings.TrimPrefix(strings.TrimRight(c.Value, "\r\n"), "#"))
	}
	return dedentBlockString(lines)
}

// dedentBlockString removes the common indentation of all lines but the first,
// then drops leading and trailing blank lines.
func dedentBlockString(lines []string) string {
	common := -1
	for i, line := range lines {
		indent := leadingWhitespace(line)
		if indent == len(line) {
			continue
		}
		if i == 0 {
			continue
		}
		if common < 0 || indent < common {
			common = indent
		}
	}
	if common > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) >= common {
				lines[i] = lines[i][common:]
			} else {
				lines[i] = ""
			}
		}
	}
	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

func isBlank(s string) bool {
	return leadingWhitespace(s) == len(s)
}
