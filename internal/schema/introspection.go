package schema

import "strings"

var (
	schemaIntrospectionType     = schemaType()
	typeIntrospectionType       = typeType()
	fieldIntrospectionType      = fieldType()
	inputValueIntrospectionType = inputValueType()
	enumValueIntrospectionType  = enumValueType()
	directiveIntrospectionType  = directiveType()
	typeKindIntrospectionType   = typeKindEnum()
	locationIntrospectionType   = directiveLocationEnum()
)

var introspectionTypes = []*Type{
	schemaIntrospectionType,
	directiveIntrospectionType,
	locationIntrospectionType,
	typeIntrospectionType,
	fieldIntrospectionType,
	inputValueIntrospectionType,
	enumValueIntrospectionType,
	typeKindIntrospectionType,
}

// IntrospectionTypes returns the shared introspection types (__Schema, __Type, ...).
func IntrospectionTypes() []*Type {
	return append([]*Type(nil), introspectionTypes...)
}

// IsIntrospectionType reports whether t is one of the shared introspection types.
func IsIntrospectionType(t *Type) bool {
	for _, it := range introspectionTypes {
		if t == it {
			return true
		}
	}
	return false
}

// IsReservedName reports whether name uses the "__" prefix reserved for introspection.
func IsReservedName(name string) bool {
	return strings.HasPrefix(name, "__")
}

func includeDeprecatedArg() []*InputValue {
	return []*InputValue{{Name: "includeDeprecated", Type: NamedType("Boolean"), DefaultValue: false}}
}

// schemaType returns the __Schema introspection type definition
func schemaType() *Type {
	return &Type{
		Name:        "__Schema",
		Kind:        TypeKindObject,
		Description: "A GraphQL Schema defines the capabilities of a GraphQL server.",
		Fields: []*Field{
			{
				Name:        "description",
				Description: "A description of the schema.",
				Type:        NamedType("String"),
			},
			{
				Name:        "types",
				Description: "A list of all types supported by this server.",
				Type:        NonNullType(ListType(NonNullType(NamedType("__Type")))),
			},
			{
				Name:        "queryType",
				Description: "The type that query operations will be rooted at.",
				Type:        NonNullType(NamedType("__Type")),
			},
			{
				Name:        "mutationType",
				Description: "If this server supports mutation, the type that mutation operations will be rooted at.",
				Type:        NamedType("__Type"),
			},
			{
				Name:        "subscriptionType",
				Description: "If this server support subscription, the type that subscription operations will be rooted at.",
				Type:        NamedType("__Type"),
			},
			{
				Name:        "directives",
				Description: "A list of all directives supported by this server.",
				Type:        NonNullType(ListType(NonNullType(NamedType("__Directive")))),
			},
		},
	}
}

// typeType returns the __Type introspection type definition
func typeType() *Type {
	return &Type{
		Name:        "__Type",
		Kind:        TypeKindObject,
		Description: "The fundamental unit of any GraphQL Schema is the type.",
		Fields: []*Field{
			{Name: "kind", Type: NonNullType(NamedType("__TypeKind"))},
			{Name: "name", Type: NamedType("String")},
			{Name: "description", Type: NamedType("String")},
			{Name: "specifiedByURL", Type: NamedType("String")},
			{
				Name:      "fields",
				Arguments: includeDeprecatedArg(),
				Type:      ListType(NonNullType(NamedType("__Field"))),
			},
			{Name: "interfaces", Type: ListType(NonNullType(NamedType("__Type")))},
			{Name: "possibleTypes", Type: ListType(NonNullType(NamedType("__Type")))},
			{
				Name:      "enumValues",
				Arguments: includeDeprecatedArg(),
				Type:      ListType(NonNullType(NamedType("__EnumValue"))),
			},
			{
				Name:      "inputFields",
				Arguments: includeDeprecatedArg(),
				Type:      ListType(NonNullType(NamedType("__InputValue"))),
			},
			{Name: "ofType", Type: NamedType("__Type")},
			{Name: "isOneOf", Type: NamedType("Boolean")},
		},
	}
}

func fieldType() *Type {
	return &Type{
		Name:        "__Field",
		Kind:        TypeKindObject,
		Description: "Object and Interface types are described by a list of Fields, each of which has a name, potentially a list of arguments, and a return type.",
		Fields: []*Field{
			{Name: "name", Type: NonNullType(NamedType("String"))},
			{Name: "description", Type: NamedType("String")},
			{
				Name:      "args",
				Arguments: includeDeprecatedArg(),
				Type:      NonNullType(ListType(NonNullType(NamedType("__InputValue")))),
			},
			{Name: "type", Type: NonNullType(NamedType("__Type"))},
			{Name: "isDeprecated", Type: NonNullType(NamedType("Boolean"))},
			{Name: "deprecationReason", Type: NamedType("String")},
		},
	}
}

func inputValueType() *Type {
	return &Type{
		Name:        "__InputValue",
		Kind:        TypeKindObject,
		Description: "Arguments provided to Fields or Directives and the input fields of an InputObject are represented as Input Values which describe their type and optionally a default value.",
		Fields: []*Field{
			{Name: "name", Type: NonNullType(NamedType("String"))},
			{Name: "description", Type: NamedType("String")},
			{Name: "type", Type: NonNullType(NamedType("__Type"))},
			{Name: "defaultValue", Type: NamedType("String")},
			{Name: "isDeprecated", Type: NonNullType(NamedType("Boolean"))},
			{Name: "deprecationReason", Type: NamedType("String")},
		},
	}
}

func enumValueType() *Type {
	return &Type{
		Name:        "__EnumValue",
		Kind:        TypeKindObject,
		Description: "One possible value for a given Enum. Enum values are unique values, not a placeholder for a string or numeric value.",
		Fields: []*Field{
			{Name: "name", Type: NonNullType(NamedType("String"))},
			{Name: "description", Type: NamedType("String")},
			{Name: "isDeprecated", Type: NonNullType(NamedType("Boolean"))},
			{Name: "deprecationReason", Type: NamedType("String")},
		},
	}
}

func directiveType() *Type {
	return &Type{
		Name:        "__Directive",
		Kind:        TypeKindObject,
		Description: "A Directive provides a way to describe alternate runtime execution and type validation behavior in a GraphQL document.",
		Fields: []*Field{
			{Name: "name", Type: NonNullType(NamedType("String"))},
			{Name: "description", Type: NamedType("String")},
			{Name: "isRepeatable", Type: NonNullType(NamedType("Boolean"))},
			{Name: "locations", Type: NonNullType(ListType(NonNullType(NamedType("__DirectiveLocation"))))},
			{
				Name:      "args",
				Arguments: includeDeprecatedArg(),
				Type:      NonNullType(ListType(NonNullType(NamedType("__InputValue")))),
			},
		},
	}
}

func enumOf(name, description string, values ...string) *Type {
	t := &Type{Name: name, Kind: TypeKindEnum, Description: description}
	for _, v := range values {
		t.EnumValues = append(t.EnumValues, &EnumValue{Name: v, Value: v})
	}
	return t
}

func typeKindEnum() *Type {
	return enumOf("__TypeKind", "An enum describing what kind of type a given `__Type` is.",
		"SCALAR", "OBJECT", "INTERFACE", "UNION", "ENUM", "INPUT_OBJECT", "LIST", "NON_NULL")
}

func directiveLocationEnum() *Type {
	return enumOf("__DirectiveLocation", "A Directive can be adjacent to many parts of the GraphQL language, a __DirectiveLocation describes one such possible adjacencies.",
		"QUERY", "MUTATION", "SUBSCRIPTION", "FIELD", "FRAGMENT_DEFINITION", "FRAGMENT_SPREAD",
		"INLINE_FRAGMENT", "VARIABLE_DEFINITION", "SCHEMA", "SCALAR", "OBJECT", "FIELD_DEFINITION",
		"ARGUMENT_DEFINITION", "INTERFACE", "UNION", "ENUM", "ENUM_VALUE", "INPUT_OBJECT",
		"INPUT_FIELD_DEFINITION")
}
