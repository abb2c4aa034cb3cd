package extend

import (
	astbuild "github.com/hanpama/schemaext/internal/astbuild"
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// extender rebuilds the types and directives of an existing schema against
// the type table of the schema being built.
type extender struct {
	table      *typeTable
	builder    *astbuild.Builder
	extensions map[string][]*language.Definition
}

// extendNamedType returns the counterpart of t in the new schema. Built-in
// types are returned as is. Members referencing other types are filled in
// when the builder completes.
func (e *extender) extendNamedType(t *schema.Type) *schema.Type {
	if schema.IsBuiltInType(t) {
		return t
	}
	exts := e.extensions[t.Name]

	out := &schema.Type{
		Name:              t.Name,
		Kind:              t.Kind,
		Description:       t.Description,
		OneOf:             t.OneOf,
		ASTNode:           t.ASTNode,
		ExtensionASTNodes: concat(t.ExtensionASTNodes, exts),
	}
	if t.SpecifiedByURL != nil {
		out.SetSpecifiedByURL(*t.SpecifiedByURL)
	}

	switch t.Kind {
	case schema.TypeKindScalar:
	case schema.TypeKindObject, schema.TypeKindInterface:
		e.builder.Defer(func() {
			out.Interfaces = concat(e.replaceNamedTypes(t.Interfaces), e.builder.BuildInterfaces(exts))
			out.Fields = concat(e.extendFields(t.Fields), e.builder.BuildFieldMap(exts))
		})
	case schema.TypeKindUnion:
		e.builder.Defer(func() {
			out.PossibleTypes = concat(e.replaceNamedTypes(t.PossibleTypes), e.builder.BuildUnionTypes(exts))
		})
	case schema.TypeKindEnum:
		values := make([]*schema.EnumValue, 0, len(t.EnumValues))
		for _, v := range t.EnumValues {
			cp := *v
			values = append(values, &cp)
		}
		out.EnumValues = astbuild.MergeEnumValues(values, e.builder.BuildEnumValueMap(exts)...)
	case schema.TypeKindInputObject:
		e.builder.Defer(func() {
			out.InputFields = concat(e.extendArgs(t.InputFields), e.builder.BuildInputFieldMap(exts))
		})
	default:
		panic("unreachable")
	}
	return out
}

func (e *extender) extendFields(fields []*schema.Field) []*schema.Field {
	out := make([]*schema.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, &schema.Field{
			Name:              f.Name,
			Description:       f.Description,
			Type:              e.replaceTypeRef(f.Type),
			Arguments:         e.extendArgs(f.Arguments),
			IsDeprecated:      f.IsDeprecated,
			DeprecationReason: f.DeprecationReason,
			ASTNode:           f.ASTNode,
		})
	}
	return out
}

func (e *extender) extendArgs(args []*schema.InputValue) []*schema.InputValue {
	if args == nil {
		return nil
	}
	out := make([]*schema.InputValue, 0, len(args))
	for _, arg := range args {
		cp := *arg
		cp.Type = e.replaceTypeRef(arg.Type)
		out = append(out, &cp)
	}
	return out
}

// replaceTypeRef rebuilds ref with its named type resolved in the new table.
func (e *extender) replaceTypeRef(ref *schema.TypeRef) *schema.TypeRef {
	switch ref.Kind {
	case schema.TypeRefKindList:
		return schema.ListType(e.replaceTypeRef(ref.OfType))
	case schema.TypeRefKindNonNull:
		return schema.NonNullType(e.replaceTypeRef(ref.OfType))
	}
	return schema.NamedType(e.replaceNamedType(ref.Named))
}

func (e *extender) replaceNamedType(name string) string {
	return e.table.lookup(name).Name
}

func (e *extender) replaceNamedTypes(names []string) []string {
	if names == nil {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, e.replaceNamedType(name))
	}
	return out
}
