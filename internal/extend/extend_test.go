package extend_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/schemaext/internal/extend"
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
	"github.com/hanpama/schemaext/internal/validation"
)

const baseSDL = `
type Query {
  foo: Foo
  search(color: Color = RED): [Result!]!
}

interface Node {
  id: ID!
}

"A foo"
type Foo implements Node {
  id: ID!
  "the a field"
  a: String
}

type Bar {
  size: Int
}

union Result = Foo

enum Color {
  RED
  GREEN
}

input Filter {
  color: Color
}

scalar Date

directive @tag(name: String!, filter: Filter) on FIELD_DEFINITION
`

func parse(t *testing.T, sdl string) *language.Document {
	t.Helper()
	doc, err := language.ParseDocument("test.graphql", sdl)
	require.NoError(t, err)
	return doc
}

func build(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	s, err := extend.BuildSchema(parse(t, sdl))
	require.NoError(t, err)
	return s
}

func extendSDL(t *testing.T, base *schema.Schema, sdl string, opts ...extend.Option) *schema.Schema {
	t.Helper()
	out, err := extend.ExtendSchema(base, parse(t, sdl), opts...)
	require.NoError(t, err)
	return out
}

func fieldNames(t *schema.Type) []string {
	var names []string
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestExtendSchemaPreconditions(t *testing.T) {
	base := build(t, baseSDL)

	_, err := extend.ExtendSchema(nil, parse(t, `type X { a: Int }`))
	assert.ErrorIs(t, err, extend.ErrInvalidSchema)

	_, err = extend.ExtendSchema(base, nil)
	assert.ErrorIs(t, err, extend.ErrInvalidDocument)
}

func TestExtendSchemaNoopReturnsSameInstance(t *testing.T) {
	base := build(t, baseSDL)

	out := extendSDL(t, base, `# nothing to add`)
	assert.Same(t, base, out)
}

func TestExtendSchemaIsolation(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `extend type Bar { more: Int }`)
	require.NotSame(t, base, out)

	for name, typ := range out.Types {
		old := base.Types[name]
		if old == nil {
			continue
		}
		if schema.IsBuiltInType(typ) {
			assert.Same(t, old, typ, name)
			continue
		}
		assert.NotSame(t, old, typ, name)
		for i, f := range typ.Fields {
			if i < len(old.Fields) {
				assert.NotSame(t, old.Fields[i], f, name+"."+f.Name)
				assert.NotSame(t, old.Fields[i].Type, f.Type, name+"."+f.Name)
			}
		}
		for i, v := range typ.EnumValues {
			assert.NotSame(t, old.EnumValues[i], v, name+"."+v.Name)
		}
		for i, v := range typ.InputFields {
			assert.NotSame(t, old.InputFields[i], v, name+"."+v.Name)
		}
	}
}

func TestExtendSchemaLeavesBaseUnchanged(t *testing.T) {
	base := build(t, baseSDL)
	before := schema.Render(base)
	baseFoo := base.Type("Foo")
	fooFields := len(baseFoo.Fields)
	fooExts := len(baseFoo.ExtensionASTNodes)

	extendSDL(t, base, `
		extend type Foo implements Named { b: Int name: String }
		interface Named { name: String }
		extend enum Color { BLUE }
		extend union Result = Bar
		extend input Filter { size: Int }
		extend schema { mutation: Mutation }
		type Mutation { noop: Boolean }
		directive @new on OBJECT
	`)

	if diff := cmp.Diff(before, schema.Render(base)); diff != "" {
		t.Errorf("base schema changed (-before +after):\n%s", diff)
	}
	assert.Len(t, baseFoo.Fields, fooFields)
	assert.Len(t, baseFoo.ExtensionASTNodes, fooExts)
	assert.Empty(t, base.MutationType)
}

func TestExtendObjectFields(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `extend type Foo { b: Int }`)

	foo := out.Type("Foo")
	assert.Equal(t, []string{"id", "a", "b"}, fieldNames(foo))
	assert.Equal(t, "String", foo.Field("a").Type.String())
	assert.Equal(t, "the a field", foo.Field("a").Description)
	assert.Equal(t, "Int", foo.Field("b").Type.String())
	assert.Equal(t, "A foo", foo.Description)
	require.Len(t, foo.ExtensionASTNodes, 1)
	assert.Equal(t, "Foo", foo.ExtensionASTNodes[0].Name)
}

func TestExtendObjectInterfaces(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		interface Bar2 { x: Int }
		extend type Foo implements Bar2 { x: Int }
	`)

	foo := out.Type("Foo")
	assert.Equal(t, []string{"Node", "Bar2"}, foo.Interfaces)
	assert.Equal(t, schema.TypeKindInterface, out.Type("Bar2").Kind)
}

func TestExtendEnumMergeOverride(t *testing.T) {
	base := build(t, baseSDL)

	out := extendSDL(t, base, `extend enum Color { BLUE }`)
	color := out.Type("Color")
	var names []string
	for _, v := range color.EnumValues {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"RED", "GREEN", "BLUE"}, names)

	out = extendSDL(t, base, `extend enum Color { "crimson" RED @deprecated BLUE }`, extend.WithAssumeValidSDL())
	color = out.Type("Color")
	require.Len(t, color.EnumValues, 3)
	red := color.EnumValues[0]
	assert.Equal(t, "RED", red.Name)
	assert.Equal(t, "crimson", red.Description)
	assert.True(t, red.IsDeprecated)
	assert.NotNil(t, red.ASTNode)
	assert.False(t, base.Type("Color").EnumValue("RED").IsDeprecated)
}

func TestExtendUnionAndInput(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		extend union Result = Bar
		extend input Filter { size: Int = 3 }
	`)

	assert.Equal(t, []string{"Foo", "Bar"}, out.Type("Result").PossibleTypes)
	filter := out.Type("Filter")
	require.Len(t, filter.InputFields, 2)
	assert.Equal(t, "Color", filter.InputFields[0].Type.String())
	assert.Equal(t, int64(3), filter.InputField("size").DefaultValue)
}

func TestExtendScalarKeepsConfiguration(t *testing.T) {
	base := build(t, `
		type Query { d: Date }
		scalar Date @specifiedBy(url: "https://example.com/date")
	`)
	out := extendSDL(t, base, `
		directive @format on SCALAR
		extend scalar Date @format
	`)

	date := out.Type("Date")
	require.NotNil(t, date.SpecifiedByURL)
	assert.Equal(t, "https://example.com/date", *date.SpecifiedByURL)
	assert.Len(t, date.ExtensionASTNodes, 1)
}

func TestExtendSchemaMutationRoot(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		extend schema { mutation: NewMutationType }
		type NewMutationType { createFoo: Foo }
	`)

	require.NotNil(t, out.GetMutationType())
	assert.Equal(t, "NewMutationType", out.MutationType)
	assert.Same(t, out.Type("NewMutationType"), out.GetMutationType())
	assert.Equal(t, "Query", out.QueryType)
	assert.NotSame(t, base.GetQueryType(), out.GetQueryType())
	assert.Empty(t, out.SubscriptionType)
	require.Len(t, out.ExtensionASTNodes, 1)
}

func TestExtendSchemaMutualRecursion(t *testing.T) {
	base := build(t, baseSDL)
	for _, sdl := range []string{
		`type A { b: B } type B { a: A }`,
		`type B { a: A } type A { b: B }`,
	} {
		out := extendSDL(t, base, sdl)
		a, b := out.Type("A"), out.Type("B")
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.Same(t, b, out.Type(a.Field("b").Type.GetNamedType()))
		assert.Same(t, a, out.Type(b.Field("a").Type.GetNamedType()))
	}
}

func TestExtendExistingTypeReferencingNewType(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		extend type Foo { owner: [User!] }
		type User { foos: [Foo] }
	`)

	owner := out.Type("Foo").Field("owner")
	assert.Equal(t, "[User!]", owner.Type.String())
	assert.Equal(t, schema.TypeKindObject, out.Type("User").Kind)
}

func TestExtendNewTypeInSameDocument(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		type Post { title: String }
		extend type Post { body: String }
	`)

	post := out.Type("Post")
	assert.Equal(t, []string{"title", "body"}, fieldNames(post))
	assert.Len(t, post.ExtensionASTNodes, 1)
}

func TestExtendUndefinedTarget(t *testing.T) {
	base := build(t, baseSDL)
	doc := parse(t, `extend type Missing { a: Int }`)

	_, err := extend.ExtendSchema(base, doc)
	var verr validation.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr, 1)
	assert.Equal(t, `Cannot extend type "Missing" because it is not defined.`, verr[0].Message)
}

func TestExtendUnknownReferencePanicsWithoutValidation(t *testing.T) {
	base := build(t, baseSDL)
	doc := parse(t, `extend type Foo { m: Missing }`)

	assert.PanicsWithValue(t, `Unknown type: "Missing".`, func() {
		_, _ = extend.ExtendSchema(base, doc, extend.WithAssumeValid())
	})
}

func TestExtendDirectives(t *testing.T) {
	base := build(t, baseSDL)
	out := extendSDL(t, base, `
		directive @cache(ttl: Int) on FIELD_DEFINITION
		directive @audit on OBJECT
	`)

	require.Len(t, out.Directives, len(base.Directives)+2)
	for i, d := range base.Directives {
		assert.Equal(t, d.Name, out.Directives[i].Name)
		assert.NotSame(t, d, out.Directives[i])
	}
	n := len(out.Directives)
	assert.Equal(t, "cache", out.Directives[n-2].Name)
	assert.Equal(t, "audit", out.Directives[n-1].Name)

	tag := out.Directive("tag")
	require.NotNil(t, tag)
	assert.Equal(t, "Filter", tag.Argument("filter").Type.String())
	assert.NotSame(t, base.Directive("tag").Argument("filter"), tag.Argument("filter"))
}

func TestExtendSchemaDefinitionNodes(t *testing.T) {
	base := build(t, `
		type Query { a: Int }
		extend schema @link
		directive @link on SCHEMA
	`)
	require.Len(t, base.ExtensionASTNodes, 1)

	out := extendSDL(t, base, `
		"The API"
		schema { query: Query }
		extend schema { subscription: Events }
		type Events { tick: Int }
	`, extend.WithAssumeValidSDL())

	require.NotNil(t, out.ASTNode)
	assert.Equal(t, "The API", out.Description)
	require.Len(t, out.ExtensionASTNodes, 2)
	assert.Same(t, base.ExtensionASTNodes[0], out.ExtensionASTNodes[0])
	assert.Equal(t, "Events", out.SubscriptionType)
}

func TestExtendCommentDescriptions(t *testing.T) {
	base := build(t, baseSDL)
	sdl := `
# Something new
type Thing {
  # the id
  id: ID
}
`
	plain := extendSDL(t, base, sdl)
	assert.Empty(t, plain.Type("Thing").Description)

	withComments := extendSDL(t, base, sdl, extend.WithCommentDescriptions())
	assert.Equal(t, "Something new", withComments.Type("Thing").Description)
	assert.Equal(t, "the id", withComments.Type("Thing").Field("id").Description)
}

func TestExtendSchemaConcurrent(t *testing.T) {
	base := build(t, baseSDL)
	doc := parse(t, `
		extend type Foo { b: Int }
		extend enum Color { BLUE }
		type A { b: B }
		type B { a: A }
	`)
	want := schema.Render(extendSDL(t, base, `
		extend type Foo { b: Int }
		extend enum Color { BLUE }
		type A { b: B }
		type B { a: A }
	`))

	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := extend.ExtendSchema(base, doc)
			errs[i] = err
			if err == nil {
				results[i] = schema.Render(out)
			}
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, want, results[i])
	}
}

func TestExtendRender(t *testing.T) {
	base := build(t, `
		type Query { foo: Foo }
		type Foo { a: String }
	`)
	out := extendSDL(t, base, `
		extend type Foo { b(limit: Int = 10): [Foo!] @deprecated }
		extend schema { mutation: Mut }
		type Mut { touch: Boolean }
	`)

	want := `schema {
  query: Query
  mutation: Mut
}

type Foo {
  a: String
  b(limit: Int = 10): [Foo!] @deprecated
}

type Mut {
  touch: Boolean
}

type Query {
  foo: Foo
}
`
	if diff := cmp.Diff(want, schema.Render(out)); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
}
