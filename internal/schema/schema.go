package schema

import (
	"sort"

	language "github.com/hanpama/schemaext/internal/language"
)

// Schema represents the complete GraphQL schema.
//
// Every reference between schema elements (field types, interfaces, union
// members, root operation types) is a type name resolved through Types. A
// Schema is treated as read-only once it has been assembled.
type Schema struct {
	QueryType        string
	MutationType     string
	SubscriptionType string
	Types            map[string]*Type // All named types keyed by name
	Directives       []*Directive
	Description      string

	ASTNode           *language.SchemaDefinition   `json:"-"`
	ExtensionASTNodes []*language.SchemaDefinition `json:"-"`
}

// GetQueryType returns the root query type (may be nil if absent)
func (s *Schema) GetQueryType() *Type { return s.Type(s.QueryType) }

// GetMutationType returns the root mutation type (may be nil if absent)
func (s *Schema) GetMutationType() *Type { return s.Type(s.MutationType) }

// GetSubscriptionType returns the root subscription type (may be nil if absent)
func (s *Schema) GetSubscriptionType() *Type { return s.Type(s.SubscriptionType) }

// Type looks up a named type.
func (s *Schema) Type(name string) *Type {
	if name == "" {
		return nil
	}
	return s.Types[name]
}

// Directive looks up a directive by name.
func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.Directives {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// TypeNames returns the names of all types in lexicographic order.
func (s *Schema) TypeNames() []string {
	names := make([]string, 0, len(s.Types))
	for name := range s.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RootTypeName returns the root type name configured for op.
func (s *Schema) RootTypeName(op language.Operation) string {
	switch op {
	case language.Query:
		return s.QueryType
	case language.Mutation:
		return s.MutationType
	case language.Subscription:
		return s.SubscriptionType
	}
	return ""
}

// Type is a named GraphQL type (object, interface, union, scalar, enum, input)
type Type struct {
	Name           string
	Kind           TypeKind
	Description    string
	Fields         []*Field      // For OBJECT and INTERFACE
	Interfaces     []string      // For OBJECT and INTERFACE (implemented/extended)
	PossibleTypes  []string      // For UNION
	EnumValues     []*EnumValue  // For ENUM
	InputFields    []*InputValue // For INPUT_OBJECT
	SpecifiedByURL *string
	OneOf          bool

	ASTNode           *language.Definition   `json:"-"`
	ExtensionASTNodes []*language.Definition `json:"-"`
}

// Field looks up a field of an object or interface type.
func (t *Type) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// EnumValue looks up an enum value.
func (t *Type) EnumValue(name string) *EnumValue {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// InputField looks up a field of an input object type.
func (t *Type) InputField(name string) *InputValue {
	for _, f := range t.InputFields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// IsInputType reports whether values of t may be used as inputs.
func (t *Type) IsInputType() bool {
	switch t.Kind {
	case TypeKindScalar, TypeKindEnum, TypeKindInputObject:
		return true
	}
	return false
}

// IsOutputType reports whether t may be used as a field result.
func (t *Type) IsOutputType() bool {
	return t.Kind != TypeKindInputObject
}

// Field represents a field on an object or interface
type Field struct {
	Name              string
	Description       string
	Type              *TypeRef
	Arguments         []*InputValue
	IsDeprecated      bool
	DeprecationReason string

	ASTNode *language.FieldDefinition `json:"-"`
}

// TypeKind represents the kind of GraphQL type
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// TypeRef represents a reference to a type (can be wrapped)
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // For List and NonNull
	Named  string   // For named types
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

// Helper functions for TypeRef
func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	if t.Kind == TypeRefKindList {
		return true
	}
	if t.Kind == TypeRefKindNonNull && t.OfType != nil {
		return t.OfType.Kind == TypeRefKindList
	}
	return false
}

func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

func (t *TypeRef) GetNamedType() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

// String renders the reference in SDL notation, e.g. "[String!]".
func (t *TypeRef) String() string { return renderTypeRef(t) }

type EnumValue struct {
	Name              string
	Description       string
	Value             any // internal value
	IsDeprecated      bool
	DeprecationReason string

	ASTNode *language.EnumValueDefinition `json:"-"`
}

type InputValue struct {
	Name              string
	Description       string
	Type              *TypeRef
	DefaultValue      any
	IsDeprecated      bool
	DeprecationReason string
}

// EnumLiteral is an enum value appearing in a default value. It renders
// unquoted, unlike a string.
type EnumLiteral string

type Directive struct {
	Name         string
	Description  string
	Locations    []string
	Arguments    []*InputValue
	IsRepeatable bool

	ASTNode *language.DirectiveDefinition `json:"-"`
}

func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }

// IsNonNull reports whether the type is wrapped with Non-Null.
func IsNonNull(t *TypeRef) bool { return t != nil && t.IsNonNull() }

// IsList reports whether the type is (or is wrapped by) a list type.
func IsList(t *TypeRef) bool { return t != nil && t.IsList() }

// Unwrap removes one layer of Non-Null or List wrapping and returns the inner type.
func Unwrap(t *TypeRef) *TypeRef { return t.Unwrap() }

// GetNamedType returns the innermost named type for the given reference.
func GetNamedType(t *TypeRef) string { return t.GetNamedType() }
