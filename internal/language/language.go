package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ParseDocument parses a single SDL source into a Document whose definitions
// keep their source order.
func ParseDocument(name, source string) (*Document, error) {
	return ParseDocuments(&Source{Name: name, Input: source})
}

// ParseDocuments parses every source and concatenates their definitions. The
// result is ordered by source first, then by offset within the source.
func ParseDocuments(sources ...*Source) (*Document, error) {
	doc := &Document{}
	for _, src := range sources {
		sd, err := parser.ParseSchema(src)
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, NewDocument(sd).Definitions...)
	}
	return doc, nil
}
