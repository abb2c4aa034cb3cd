// Package astbuild turns SDL definition nodes into schema elements.
//
// A Builder never looks types up on its own: every type name found in a field
// type, argument type, implemented interface or union member goes through the
// Resolver it was created with. Bodies of types that reference other names are
// deferred until Complete, so definitions may refer to each other in any
// order, including cycles.
package astbuild

import (
	"strconv"

	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// Options controls how descriptions are read from the document.
type Options struct {
	// CommentDescriptions uses the "#" comment block preceding a definition as
	// its description when it has no string description.
	CommentDescriptions bool
}

// Resolver returns the type registered under name. It must not return nil;
// implementations panic on unknown names.
type Resolver func(name string) *schema.Type

// Thunk is a deferred computation filling in the body of a type. Thunks are
// pure with respect to their inputs and may be evaluated more than once.
type Thunk func()

// Builder builds schema elements from definition nodes.
type Builder struct {
	opts    Options
	resolve Resolver
	pending []Thunk
}

func NewBuilder(opts Options, resolve Resolver) *Builder {
	return &Builder{opts: opts, resolve: resolve}
}

// Defer queues th until Complete.
func (b *Builder) Defer(th Thunk) {
	b.pending = append(b.pending, th)
}

// Complete evaluates every deferred body in the order it was queued. It must be
// called once all type shells are resolvable.
func (b *Builder) Complete() {
	pending := b.pending
	b.pending = nil
	for _, th := range pending {
		th()
	}
}

// BuildType allocates a type for def. Extensions found in the same document
// are merged after the definition's own members. Members referencing other
// types are filled in by Complete.
func (b *Builder) BuildType(def *language.Definition, extensions []*language.Definition) *schema.Type {
	nodes := make([]*language.Definition, 0, 1+len(extensions))
	nodes = append(nodes, def)
	nodes = append(nodes, extensions...)

	t := schema.NewType(def.Name, kindOf(def.Kind),
		b.description(def.Description, def.BeforeDescriptionComment, def.AfterDescriptionComment))
	t.ASTNode = def
	t.ExtensionASTNodes = append([]*language.Definition(nil), extensions...)

	switch t.Kind {
	case schema.TypeKindScalar:
		if url, ok := specifiedByURL(def.Directives); ok {
			t.SetSpecifiedByURL(url)
		}
	case schema.TypeKindEnum:
		t.EnumValues = b.BuildEnumValueMap(nodes)
	case schema.TypeKindObject, schema.TypeKindInterface:
		b.Defer(func() {
			t.Interfaces = b.BuildInterfaces(nodes)
			t.Fields = b.BuildFieldMap(nodes)
		})
	case schema.TypeKindUnion:
		b.Defer(func() {
			t.PossibleTypes = b.BuildUnionTypes(nodes)
		})
	case schema.TypeKindInputObject:
		t.OneOf = def.Directives.ForName("oneOf") != nil
		b.Defer(func() {
			t.InputFields = b.BuildInputFieldMap(nodes)
		})
	}
	return t
}

func kindOf(kind language.DefinitionKind) schema.TypeKind {
	switch kind {
	case language.Scalar:
		return schema.TypeKindScalar
	case language.Object:
		return schema.TypeKindObject
	case language.Interface:
		return schema.TypeKindInterface
	case language.Union:
		return schema.TypeKindUnion
	case language.Enum:
		return schema.TypeKindEnum
	case language.InputObject:
		return schema.TypeKindInputObject
	}
	panic("unreachable")
}

// BuildFieldMap builds the fields declared by nodes, in declaration order.
func (b *Builder) BuildFieldMap(nodes []*language.Definition) []*schema.Field {
	var fields []*schema.Field
	for _, node := range nodes {
		for _, fd := range node.Fields {
			fields = append(fields, b.BuildField(fd))
		}
	}
	return fields
}

func (b *Builder) BuildField(fd *language.FieldDefinition) *schema.Field {
	f := schema.NewField(fd.Name,
		b.description(fd.Description, fd.BeforeDescriptionComment, fd.AfterDescriptionComment),
		b.BuildTypeRef(fd.Type))
	f.Arguments = b.BuildArguments(fd.Arguments)
	if reason, ok := deprecationReason(fd.Directives); ok {
		f.Deprecate(reason)
	}
	f.ASTNode = fd
	return f
}

// BuildArguments builds argument definitions of a field or directive.
func (b *Builder) BuildArguments(args language.ArgumentDefinitionList) []*schema.InputValue {
	var out []*schema.InputValue
	for _, arg := range args {
		v := schema.NewInputValue(arg.Name,
			b.description(arg.Description, arg.BeforeDescriptionComment, arg.AfterDescriptionComment),
			b.BuildTypeRef(arg.Type)).
			SetDefault(ValueFromAST(arg.DefaultValue))
		if reason, ok := deprecationReason(arg.Directives); ok {
			v.Deprecate(reason)
		}
		out = append(out, v)
	}
	return out
}

// BuildInputFieldMap builds the input fields declared by nodes.
func (b *Builder) BuildInputFieldMap(nodes []*language.Definition) []*schema.InputValue {
	var fields []*schema.InputValue
	for _, node := range nodes {
		for _, fd := range node.Fields {
			v := schema.NewInputValue(fd.Name,
				b.description(fd.Description, fd.BeforeDescriptionComment, fd.AfterDescriptionComment),
				b.BuildTypeRef(fd.Type)).
				SetDefault(ValueFromAST(fd.DefaultValue))
			if reason, ok := deprecationReason(fd.Directives); ok {
				v.Deprecate(reason)
			}
			fields = append(fields, v)
		}
	}
	return fields
}

// BuildEnumValueMap builds the enum values declared by nodes. A later
// declaration of a name replaces the earlier one in place.
func (b *Builder) BuildEnumValueMap(nodes []*language.Definition) []*schema.EnumValue {
	var values []*schema.EnumValue
	for _, node := range nodes {
		for _, ev := range node.EnumValues {
			v := schema.NewEnumValue(ev.Name,
				b.description(ev.Description, ev.BeforeDescriptionComment, ev.AfterDescriptionComment))
			if reason, ok := deprecationReason(ev.Directives); ok {
				v.Deprecate(reason)
			}
			v.ASTNode = ev
			values = MergeEnumValues(values, v)
		}
	}
	return values
}

// MergeEnumValues returns values with each addition merged in by name: an
// addition replaces an existing value of the same name at its position,
// otherwise it is appended.
func MergeEnumValues(values []*schema.EnumValue, additions ...*schema.EnumValue) []*schema.EnumValue {
next:
	for _, add := range additions {
		for i, v := range values {
			if v.Name == add.Name {
				values[i] = add
				continue next
			}
		}
		values = append(values, add)
	}
	return values
}

// BuildInterfaces resolves the interfaces implemented by nodes.
func (b *Builder) BuildInterfaces(nodes []*language.Definition) []string {
	var names []string
	for _, node := range nodes {
		for _, name := range node.Interfaces {
			names = append(names, b.resolve(name).Name)
		}
	}
	return names
}

// BuildUnionTypes resolves the members declared by union nodes.
func (b *Builder) BuildUnionTypes(nodes []*language.Definition) []string {
	var names []string
	for _, node := range nodes {
		for _, name := range node.Types {
			names = append(names, b.resolve(name).Name)
		}
	}
	return names
}

// BuildTypeRef converts an AST type, resolving the named type it wraps.
func (b *Builder) BuildTypeRef(t *language.Type) *schema.TypeRef {
	var ref *schema.TypeRef
	if t.Elem != nil {
		ref = schema.ListType(b.BuildTypeRef(t.Elem))
	} else {
		ref = schema.NamedType(b.resolve(t.NamedType).Name)
	}
	if t.NonNull {
		ref = schema.NonNullType(ref)
	}
	return ref
}

func (b *Builder) BuildDirective(def *language.DirectiveDefinition) *schema.Directive {
	d := schema.NewDirective(def.Name,
		b.description(def.Description, def.BeforeDescriptionComment, def.AfterDescriptionComment)).
		SetRepeatable(def.IsRepeatable)
	for _, loc := range def.Locations {
		d.AddLocation(string(loc))
	}
	d.Arguments = b.BuildArguments(def.Arguments)
	d.ASTNode = def
	return d
}

func (b *Builder) BuildDirectives(defs []*language.DirectiveDefinition) []*schema.Directive {
	var out []*schema.Directive
	for _, def := range defs {
		out = append(out, b.BuildDirective(def))
	}
	return out
}

// GetOperationTypes resolves the root operation types declared by schema
// definition and extension nodes. Later declarations win.
func (b *Builder) GetOperationTypes(nodes []*language.SchemaDefinition) map[language.Operation]*schema.Type {
	ops := make(map[language.Operation]*schema.Type)
	for _, node := range nodes {
		for _, opType := range node.OperationTypes {
			ops[opType.Operation] = b.resolve(opType.Type)
		}
	}
	return ops
}

func (b *Builder) description(desc string, before, after *language.CommentGroup) string {
	if desc != "" || !b.opts.CommentDescriptions {
		return desc
	}
	if before != nil && len(before.List) > 0 {
		return language.CommentDescription(before)
	}
	return language.CommentDescription(after)
}

func deprecationReason(directives language.DirectiveList) (string, bool) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", false
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil && arg.Value.Kind != language.NullValue {
		return arg.Value.Raw, true
	}
	return schema.DefaultDeprecationReason, true
}

func specifiedByURL(directives language.DirectiveList) (string, bool) {
	d := directives.ForName("specifiedBy")
	if d == nil {
		return "", false
	}
	if arg := d.Arguments.ForName("url"); arg != nil && arg.Value != nil {
		return arg.Value.Raw, true
	}
	return "", false
}

// ValueFromAST converts a constant AST value into its Go representation.
// Enum literals become schema.EnumLiteral; a nil node yields nil.
func ValueFromAST(v *language.Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case language.IntValue:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n
		}
		return v.Raw
	case language.FloatValue:
		if f, err := strconv.ParseFloat(v.Raw, 64); err == nil {
			return f
		}
		return v.Raw
	case language.StringValue, language.BlockValue:
		return v.Raw
	case language.BooleanValue:
		return v.Raw == "true"
	case language.EnumValue:
		return schema.EnumLiteral(v.Raw)
	case language.ListValue:
		list := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			list = append(list, ValueFromAST(child.Value))
		}
		return list
	case language.ObjectValue:
		obj := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			obj[child.Name] = ValueFromAST(child.Value)
		}
		return obj
	}
	return nil
}
