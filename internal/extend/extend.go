// Package extend produces new schemas from an existing schema and an SDL
// document of type definitions and extensions.
//
// The input schema is never modified. Every call builds a private type table,
// fills it with newly defined types and rebuilt copies of the existing ones,
// and assembles the result from that table alone. Only the built-in scalars
// and introspection types are shared between the input and the output.
package extend

import (
	"errors"
	"fmt"

	astbuild "github.com/hanpama/schemaext/internal/astbuild"
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
	validation "github.com/hanpama/schemaext/internal/validation"
)

var (
	ErrInvalidSchema   = errors.New("extend: must provide a valid schema")
	ErrInvalidDocument = errors.New("extend: must provide a valid document")
)

type Options struct {
	// AssumeValid skips validation of the document entirely.
	AssumeValid bool

	// AssumeValidSDL skips the SDL extension rules.
	AssumeValidSDL bool

	// CommentDescriptions reads descriptions from "#" comments preceding a
	// definition when it has no string description.
	CommentDescriptions bool
}

type Option func(*Options)

func WithAssumeValid() Option         { return func(o *Options) { o.AssumeValid = true } }
func WithAssumeValidSDL() Option      { return func(o *Options) { o.AssumeValidSDL = true } }
func WithCommentDescriptions() Option { return func(o *Options) { o.CommentDescriptions = true } }

func newOptions(opts []Option) Options {
	var o Options
	for _, f := range opts {
		f(&o)
	}
	return o
}

// ExtendSchema returns a new schema combining s with the definitions and
// extensions of doc. When doc contributes nothing, s itself is returned.
//
// Validation failures are returned as validation.ValidationError. A reference
// to an unknown type that slipped past validation (for instance with
// WithAssumeValid) panics.
func ExtendSchema(s *schema.Schema, doc *language.Document, opts ...Option) (*schema.Schema, error) {
	if s == nil {
		return nil, ErrInvalidSchema
	}
	if doc == nil {
		return nil, ErrInvalidDocument
	}
	o := newOptions(opts)
	if !o.AssumeValid && !o.AssumeValidSDL {
		if err := validation.ValidateSDLExtension(doc, s); err != nil {
			return nil, err
		}
	}

	c := collect(doc)
	if c.empty() {
		return s, nil
	}

	table := newTypeTable()
	b := astbuild.NewBuilder(astbuild.Options{CommentDescriptions: o.CommentDescriptions}, table.lookup)
	ext := &extender{table: table, builder: b, extensions: c.typeExtensions}

	for _, def := range c.typeDefs {
		table.set(b.BuildType(def, c.typeExtensions[def.Name]))
	}
	for _, name := range s.TypeNames() {
		table.set(ext.extendNamedType(s.Types[name]))
	}
	b.Complete()

	cfg := schema.Config{
		Description:       s.Description,
		Types:             table.values(),
		Directives:        ext.extendDirectives(s.Directives, c.directiveDefs),
		ASTNode:           s.ASTNode,
		ExtensionASTNodes: concat(s.ExtensionASTNodes, c.schemaExtensions),
	}
	if c.schemaDef != nil {
		cfg.ASTNode = c.schemaDef
		if c.schemaDef.Description != "" {
			cfg.Description = c.schemaDef.Description
		}
	}
	ext.resolveOperationTypes(&cfg, s, c)

	out, err := schema.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("extend: %w", err)
	}
	return out, nil
}

func concat[T any](a, b []T) []T {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
