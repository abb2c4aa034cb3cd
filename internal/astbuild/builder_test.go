package astbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanpama/schemaext/internal/astbuild"
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// buildAll builds every type definition of sdl against a table seeded with
// the built-in scalars.
func buildAll(t *testing.T, opts astbuild.Options, sdl string) map[string]*schema.Type {
	t.Helper()
	doc, err := language.ParseDocument("test.graphql", sdl)
	require.NoError(t, err)

	table := map[string]*schema.Type{}
	for _, st := range schema.SpecifiedScalarTypes() {
		table[st.Name] = st
	}
	b := astbuild.NewBuilder(opts, func(name string) *schema.Type {
		typ, ok := table[name]
		if !ok {
			panic("Unknown type: \"" + name + "\".")
		}
		return typ
	})

	exts := map[string][]*language.Definition{}
	for _, node := range doc.Definitions {
		if node.Kind == language.TypeExtensionNode {
			exts[node.Name()] = append(exts[node.Name()], node.Type)
		}
	}
	for _, node := range doc.Definitions {
		if node.Kind == language.TypeDefinitionNode {
			table[node.Name()] = b.BuildType(node.Type, exts[node.Name()])
		}
	}
	b.Complete()
	return table
}

func TestBuildTypeCyclicReferences(t *testing.T) {
	types := buildAll(t, astbuild.Options{}, `
		type Query { node: Node, user(id: ID!): User }
		interface Node { id: ID! }
		type User implements Node { id: ID! friends: [User!]! }
	`)

	user := types["User"]
	require.NotNil(t, user)
	assert.Equal(t, schema.TypeKindObject, user.Kind)
	assert.Equal(t, []string{"Node"}, user.Interfaces)
	require.NotNil(t, user.Field("friends"))
	assert.Equal(t, "[User!]!", user.Field("friends").Type.String())

	arg := types["Query"].Field("user").Argument("id")
	require.NotNil(t, arg)
	assert.Equal(t, "ID!", arg.Type.String())
}

func TestBuildTypeMergesSameDocumentExtensions(t *testing.T) {
	types := buildAll(t, astbuild.Options{}, `
		type Query { a: Int }
		extend type Query { b: String }
		union U = Query
		extend union U = Other
		type Other { x: Int }
	`)

	q := types["Query"]
	require.Len(t, q.Fields, 2)
	assert.Equal(t, "a", q.Fields[0].Name)
	assert.Equal(t, "b", q.Fields[1].Name)
	assert.Len(t, q.ExtensionASTNodes, 1)
	assert.Equal(t, []string{"Query", "Other"}, types["U"].PossibleTypes)
}

func TestBuildTypeUnknownReferencePanics(t *testing.T) {
	assert.PanicsWithValue(t, `Unknown type: "Missing".`, func() {
		buildAll(t, astbuild.Options{}, `type Query { m: Missing }`)
	})
}

func TestBuildEnumValues(t *testing.T) {
	types := buildAll(t, astbuild.Options{}, `
		enum Color { RED GREEN @deprecated BLUE @deprecated(reason: "use CYAN") }
	`)

	color := types["Color"]
	require.Len(t, color.EnumValues, 3)
	assert.Equal(t, "RED", color.EnumValues[0].Value)
	assert.True(t, color.EnumValue("GREEN").IsDeprecated)
	assert.Equal(t, schema.DefaultDeprecationReason, color.EnumValue("GREEN").DeprecationReason)
	assert.Equal(t, "use CYAN", color.EnumValue("BLUE").DeprecationReason)
}

func TestMergeEnumValuesReplacesInPlace(t *testing.T) {
	values := []*schema.EnumValue{
		schema.NewEnumValue("A", ""),
		schema.NewEnumValue("B", ""),
	}
	replacement := schema.NewEnumValue("A", "replaced")
	merged := astbuild.MergeEnumValues(values, replacement, schema.NewEnumValue("C", ""))

	require.Len(t, merged, 3)
	assert.Same(t, replacement, merged[0])
	assert.Equal(t, "B", merged[1].Name)
	assert.Equal(t, "C", merged[2].Name)
}

func TestBuildInputObjectDefaults(t *testing.T) {
	types := buildAll(t, astbuild.Options{}, `
		enum Sort { ASC DESC }
		input Filter @oneOf {
			limit: Int = 10
			ratio: Float = 0.5
			name: String = "x"
			sort: Sort = DESC
			tags: [String] = ["a", "b"]
			nested: Filter = { limit: 1 }
			none: Int = null
		}
	`)

	filter := types["Filter"]
	assert.True(t, filter.OneOf)
	assert.Equal(t, int64(10), filter.InputField("limit").DefaultValue)
	assert.Equal(t, 0.5, filter.InputField("ratio").DefaultValue)
	assert.Equal(t, "x", filter.InputField("name").DefaultValue)
	assert.Equal(t, schema.EnumLiteral("DESC"), filter.InputField("sort").DefaultValue)
	assert.Equal(t, []any{"a", "b"}, filter.InputField("tags").DefaultValue)
	assert.Equal(t, map[string]any{"limit": int64(1)}, filter.InputField("nested").DefaultValue)
	assert.Nil(t, filter.InputField("none").DefaultValue)
}

func TestBuildScalarSpecifiedBy(t *testing.T) {
	types := buildAll(t, astbuild.Options{}, `scalar UUID @specifiedBy(url: "https://example.com/uuid")`)

	uuid := types["UUID"]
	require.NotNil(t, uuid.SpecifiedByURL)
	assert.Equal(t, "https://example.com/uuid", *uuid.SpecifiedByURL)
}

func TestCommentDescriptions(t *testing.T) {
	sdl := `
# The root
#   query type
type Query {
  "string wins"
  # ignored
  a: Int
  # field comment
  b: Int
}
`
	plain := buildAll(t, astbuild.Options{}, sdl)
	assert.Equal(t, "", plain["Query"].Description)
	assert.Equal(t, "string wins", plain["Query"].Field("a").Description)
	assert.Equal(t, "", plain["Query"].Field("b").Description)

	comments := buildAll(t, astbuild.Options{CommentDescriptions: true}, sdl)
	assert.Equal(t, "The root\n  query type", comments["Query"].Description)
	assert.Equal(t, "string wins", comments["Query"].Field("a").Description)
	assert.Equal(t, "field comment", comments["Query"].Field("b").Description)
}

func TestBuildDirective(t *testing.T) {
	doc, err := language.ParseDocument("d.graphql", `
		"Caches a field"
		directive @cache(ttl: Int = 60, scope: String) repeatable on FIELD_DEFINITION | OBJECT
	`)
	require.NoError(t, err)
	b := astbuild.NewBuilder(astbuild.Options{}, func(name string) *schema.Type {
		for _, st := range schema.SpecifiedScalarTypes() {
			if st.Name == name {
				return st
			}
		}
		panic("Unknown type: \"" + name + "\".")
	})

	d := b.BuildDirective(doc.Definitions[0].Directive)
	assert.Equal(t, "cache", d.Name)
	assert.Equal(t, "Caches a field", d.Description)
	assert.True(t, d.IsRepeatable)
	assert.Equal(t, []string{"FIELD_DEFINITION", "OBJECT"}, d.Locations)
	require.NotNil(t, d.Argument("ttl"))
	assert.Equal(t, int64(60), d.Argument("ttl").DefaultValue)
	assert.Same(t, doc.Definitions[0].Directive, d.ASTNode)
}

func TestGetOperationTypes(t *testing.T) {
	doc, err := language.ParseDocument("s.graphql", `
		schema { query: Q }
		extend schema { mutation: M }
		type Q { a: Int }
		type M { b: Int }
	`)
	require.NoError(t, err)
	types := map[string]*schema.Type{
		"Q": schema.NewType("Q", schema.TypeKindObject, ""),
		"M": schema.NewType("M", schema.TypeKindObject, ""),
	}
	b := astbuild.NewBuilder(astbuild.Options{}, func(name string) *schema.Type { return types[name] })

	var nodes []*language.SchemaDefinition
	for _, node := range doc.Definitions {
		if node.Schema != nil {
			nodes = append(nodes, node.Schema)
		}
	}
	ops := b.GetOperationTypes(nodes)
	assert.Same(t, types["Q"], ops[language.Query])
	assert.Same(t, types["M"], ops[language.Mutation])
	assert.Nil(t, ops[language.Subscription])
}
