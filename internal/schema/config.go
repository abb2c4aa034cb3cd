package schema

import (
	"errors"
	"fmt"

	language "github.com/hanpama/schemaext/internal/language"
)

// Config describes a schema to be assembled by New.
type Config struct {
	Description  string
	Query        string
	Mutation     string
	Subscription string

	// Types lists the named types of the schema. Built-in scalars and
	// introspection types are always added.
	Types []*Type

	// Directives is the exact, ordered directive list. When nil, the
	// specified directives are used.
	Directives []*Directive

	ASTNode           *language.SchemaDefinition
	ExtensionASTNodes []*language.SchemaDefinition
}

// New assembles a schema from cfg. It fails if two distinct types share a
// name, if a reference names a type that is not part of the schema, or if a
// root operation type is missing or not an object type.
func New(cfg Config) (*Schema, error) {
	s := NewSchema(cfg.Description).
		SetQueryType(cfg.Query).
		SetMutationType(cfg.Mutation).
		SetSubscriptionType(cfg.Subscription)
	s.ASTNode = cfg.ASTNode
	s.ExtensionASTNodes = cfg.ExtensionASTNodes

	if cfg.Directives == nil {
		s.Directives = SpecifiedDirectives()
	} else {
		s.Directives = append([]*Directive(nil), cfg.Directives...)
	}

	var errs []error
	add := func(t *Type) {
		if prev, ok := s.Types[t.Name]; ok && prev != t {
			errs = append(errs, fmt.Errorf("schema must contain uniquely named types but contains multiple types named %q", t.Name))
			return
		}
		s.Types[t.Name] = t
	}
	for _, t := range specifiedScalarTypes {
		add(t)
	}
	for _, t := range introspectionTypes {
		add(t)
	}
	for _, t := range cfg.Types {
		if t == nil {
			errs = append(errs, errors.New("schema types must not contain nil"))
			continue
		}
		add(t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	errs = append(errs, s.checkRootType(language.Query)...)
	errs = append(errs, s.checkRootType(language.Mutation)...)
	errs = append(errs, s.checkRootType(language.Subscription)...)
	errs = append(errs, s.checkReferences()...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return s, nil
}

func (s *Schema) checkRootType(op language.Operation) []error {
	name := s.RootTypeName(op)
	if name == "" {
		return nil
	}
	t := s.Types[name]
	if t == nil {
		return []error{fmt.Errorf("%s root type %q is not defined", op, name)}
	}
	if t.Kind != TypeKindObject {
		return []error{fmt.Errorf("%s root type must be Object type, it cannot be %s", op, name)}
	}
	return nil
}

// checkReferences verifies that every name referenced from a type or directive
// resolves within the schema itself.
func (s *Schema) checkReferences() []error {
	var errs []error
	check := func(name, where string) {
		if _, ok := s.Types[name]; !ok {
			errs = append(errs, fmt.Errorf("unknown type %q referenced by %s", name, where))
		}
	}
	checkArgs := func(args []*InputValue, owner string) {
		for _, arg := range args {
			check(arg.Type.GetNamedType(), owner+"("+arg.Name+":)")
		}
	}
	for _, name := range s.TypeNames() {
		t := s.Types[name]
		for _, iface := range t.Interfaces {
			check(iface, name)
		}
		for _, member := range t.PossibleTypes {
			check(member, name)
		}
		for _, f := range t.Fields {
			check(f.Type.GetNamedType(), name+"."+f.Name)
			checkArgs(f.Arguments, name+"."+f.Name)
		}
		for _, f := range t.InputFields {
			check(f.Type.GetNamedType(), name+"."+f.Name)
		}
	}
	for _, d := range s.Directives {
		checkArgs(d.Arguments, "@"+d.Name)
	}
	return errs
}

// ToConfig exports the full configuration of s. Types are listed in name order
// and directives in schema order; the elements themselves are shared with s.
func (s *Schema) ToConfig() Config {
	cfg := Config{
		Description:       s.Description,
		Query:             s.QueryType,
		Mutation:          s.MutationType,
		Subscription:      s.SubscriptionType,
		Directives:        append([]*Directive{}, s.Directives...),
		ASTNode:           s.ASTNode,
		ExtensionASTNodes: append([]*language.SchemaDefinition(nil), s.ExtensionASTNodes...),
	}
	for _, name := range s.TypeNames() {
		cfg.Types = append(cfg.Types, s.Types[name])
	}
	return cfg
}
