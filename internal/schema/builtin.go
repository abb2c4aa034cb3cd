package schema

// DefaultDeprecationReason is the reason recorded by @deprecated when none is given.
const DefaultDeprecationReason = "No longer supported"

var stringType = &Type{
	Name:        "String",
	Kind:        TypeKindScalar,
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
}

var intType = &Type{
	Name:        "Int",
	Kind:        TypeKindScalar,
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
}

var floatType = &Type{
	Name:        "Float",
	Kind:        TypeKindScalar,
	Description: "The `Float` scalar type represents signed double-precision fractional values.",
}

var booleanType = &Type{
	Name:        "Boolean",
	Kind:        TypeKindScalar,
	Description: "The `Boolean` scalar type represents `true` or `false`.",
}

var idType = &Type{
	Name:        "ID",
	Kind:        TypeKindScalar,
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
}

var specifiedScalarTypes = []*Type{stringType, intType, floatType, booleanType, idType}

var includeDirective = &Directive{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Included when true.",
			Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "Boolean"}},
		},
	},
	Locations:    []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	IsRepeatable: false,
}

var skipDirective = &Directive{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Skipped when true.",
			Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "Boolean"}},
		},
	},
	Locations:    []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
	IsRepeatable: false,
}

var deprecatedDirective = &Directive{
	Name:        "deprecated",
	Description: "Marks an element of a GraphQL schema as no longer supported.",
	Arguments: []*InputValue{
		{
			Name:         "reason",
			Description:  "Explains why this element was deprecated, usually also including a suggestion for how to access supported similar data. Formatted using the Markdown syntax, as specified by [CommonMark](https://commonmark.org/).",
			Type:         &TypeRef{Kind: TypeRefKindNamed, Named: "String"},
			DefaultValue: DefaultDeprecationReason,
		},
	},
	Locations:    []string{"FIELD_DEFINITION", "ARGUMENT_DEFINITION", "INPUT_FIELD_DEFINITION", "ENUM_VALUE"},
	IsRepeatable: false,
}

var specifiedByDirective = &Directive{
	Name:        "specifiedBy",
	Description: "Exposes a URL that specifies the behavior of this scalar.",
	Arguments: []*InputValue{
		{
			Name:        "url",
			Description: "The URL that specifies the behavior of this scalar.",
			Type:        &TypeRef{Kind: TypeRefKindNonNull, OfType: &TypeRef{Kind: TypeRefKindNamed, Named: "String"}},
		},
	},
	Locations:    []string{"SCALAR"},
	IsRepeatable: false,
}

var oneOfDirective = &Directive{
	Name:         "oneOf",
	Description:  "Indicates exactly one field must be supplied and this field must not be `null`.",
	Locations:    []string{"INPUT_OBJECT"},
	IsRepeatable: false,
}

var specifiedDirectives = []*Directive{includeDirective, skipDirective, deprecatedDirective, specifiedByDirective, oneOfDirective}

// SpecifiedScalarTypes returns the scalars defined by the GraphQL specification.
// The returned types are shared singletons and must not be modified.
func SpecifiedScalarTypes() []*Type {
	return append([]*Type(nil), specifiedScalarTypes...)
}

// SpecifiedDirectives returns the directives defined by the GraphQL specification.
func SpecifiedDirectives() []*Directive {
	return append([]*Directive(nil), specifiedDirectives...)
}

// IsSpecifiedScalarType reports whether t is one of the shared built-in scalars.
func IsSpecifiedScalarType(t *Type) bool {
	for _, s := range specifiedScalarTypes {
		if t == s {
			return true
		}
	}
	return false
}

// IsSpecifiedDirective reports whether d is one of the shared built-in directives.
func IsSpecifiedDirective(d *Directive) bool {
	for _, s := range specifiedDirectives {
		if d == s {
			return true
		}
	}
	return false
}

// IsBuiltInType reports whether t is a shared built-in (specified scalar or
// introspection type). Built-ins have a fixed shape and are shared by identity
// between schemas.
func IsBuiltInType(t *Type) bool {
	return IsSpecifiedScalarType(t) || IsIntrospectionType(t)
}

// IsSpecifiedDirectiveName reports whether name is reserved by a specified directive.
func IsSpecifiedDirectiveName(name string) bool {
	for _, s := range specifiedDirectives {
		if s.Name == name {
			return true
		}
	}
	return false
}

// IsBuiltInTypeName reports whether name belongs to a specified scalar or an
// introspection type.
func IsBuiltInTypeName(name string) bool {
	for _, s := range specifiedScalarTypes {
		if s.Name == name {
			return true
		}
	}
	for _, it := range introspectionTypes {
		if it.Name == name {
			return true
		}
	}
	return false
}
