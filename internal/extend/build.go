package extend

import (
	"fmt"

	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
	validation "github.com/hanpama/schemaext/internal/validation"
)

// BuildSchema builds a schema from an SDL document of definitions. Types the
// document defines may be extended within the same document.
//
// Without a schema definition, object types named Query, Mutation and
// Subscription become the root types. Specified directives the document does
// not redefine are added.
func BuildSchema(doc *language.Document, opts ...Option) (*schema.Schema, error) {
	if doc == nil {
		return nil, ErrInvalidDocument
	}
	o := newOptions(opts)
	if !o.AssumeValid && !o.AssumeValidSDL {
		if err := validation.ValidateSDL(doc); err != nil {
			return nil, err
		}
	}

	empty, err := schema.New(schema.Config{Directives: []*schema.Directive{}})
	if err != nil {
		return nil, err
	}
	built, err := ExtendSchema(empty, doc, append(append([]Option(nil), opts...), WithAssumeValidSDL())...)
	if err != nil {
		return nil, err
	}

	cfg := built.ToConfig()
	if cfg.ASTNode == nil {
		conventional := func(current *string, name string) {
			if t := built.Type(name); *current == "" && t != nil && t.Kind == schema.TypeKindObject {
				*current = name
			}
		}
		conventional(&cfg.Query, "Query")
		conventional(&cfg.Mutation, "Mutation")
		conventional(&cfg.Subscription, "Subscription")
	}
	for _, d := range schema.SpecifiedDirectives() {
		if built.Directive(d.Name) == nil {
			cfg.Directives = append(cfg.Directives, d)
		}
	}

	out, err := schema.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return out, nil
}
