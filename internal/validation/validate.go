// Package validation checks SDL documents before they are built into or
// merged with a schema.
package validation

import (
	"strconv"

	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

// ValidateSDLExtension checks that doc can extend base. It returns nil or a
// ValidationError listing every violation found.
func ValidateSDLExtension(doc *language.Document, base *schema.Schema) error {
	v := newValidator(doc, base)
	v.run()
	if len(v.violations) > 0 {
		return v.violations
	}
	return nil
}

// ValidateSDL checks a standalone SDL document.
func ValidateSDL(doc *language.Document) error {
	return ValidateSDLExtension(doc, nil)
}

type validator struct {
	doc  *language.Document
	base *schema.Schema

	typeDefs   map[string]*language.Definition
	directives map[string]*directiveInfo

	violations ValidationError
}

type directiveInfo struct {
	locations  map[string]bool
	repeatable bool
	args       []directiveArg
}

type directiveArg struct {
	name     string
	typ      string
	required bool
}

func newValidator(doc *language.Document, base *schema.Schema) *validator {
	v := &validator{
		doc:        doc,
		base:       base,
		typeDefs:   make(map[string]*language.Definition),
		directives: make(map[string]*directiveInfo),
	}
	existing := schema.SpecifiedDirectives()
	if base != nil {
		existing = base.Directives
	}
	for _, d := range existing {
		info := &directiveInfo{locations: make(map[string]bool), repeatable: d.IsRepeatable}
		for _, loc := range d.Locations {
			info.locations[loc] = true
		}
		for _, arg := range d.Arguments {
			info.args = append(info.args, directiveArg{
				name:     arg.Name,
				typ:      arg.Type.String(),
				required: arg.Type.IsNonNull() && arg.DefaultValue == nil,
			})
		}
		v.directives[d.Name] = info
	}
	for _, node := range doc.Definitions {
		switch node.Kind {
		case language.TypeDefinitionNode:
			if _, ok := v.typeDefs[node.Name()]; !ok {
				v.typeDefs[node.Name()] = node.Type
			}
		case language.DirectiveDefinitionNode:
			def := node.Directive
			info := &directiveInfo{locations: make(map[string]bool), repeatable: def.IsRepeatable}
			for _, loc := range def.Locations {
				info.locations[string(loc)] = true
			}
			for _, arg := range def.Arguments {
				info.args = append(info.args, directiveArg{
					name:     arg.Name,
					typ:      arg.Type.String(),
					required: arg.Type.NonNull && arg.DefaultValue == nil,
				})
			}
			v.directives[def.Name] = info
		}
	}
	return v
}

func (v *validator) report(violation *Violation) {
	v.violations = append(v.violations, violation)
}

func (v *validator) run() {
	for _, rule := range []func(){
		v.loneSchemaDefinition,
		v.uniqueOperationTypes,
		v.uniqueTypeNames,
		v.uniqueEnumValueNames,
		v.uniqueFieldDefinitionNames,
		v.uniqueDirectiveNames,
		v.knownTypeNames,
		v.knownDirectives,
		v.uniqueDirectivesPerLocation,
		v.possibleTypeExtensions,
		v.knownArgumentNamesOnDirectives,
		v.uniqueArgumentNames,
		v.providedRequiredArgumentsOnDirectives,
	} {
		rule()
	}
}

func (v *validator) baseType(name string) *schema.Type {
	if v.base == nil {
		return nil
	}
	return v.base.Type(name)
}

// directiveUse is one directive list attached to a definition, with the
// location it appears at. Lists sharing a group are checked together for
// uniqueness, so a type and its extensions form one group.
type directiveUse struct {
	group    string
	location string
	list     language.DirectiveList
}

func (v *validator) directiveUses() []directiveUse {
	var uses []directiveUse
	add := func(group, location string, list language.DirectiveList) {
		if len(list) > 0 {
			uses = append(uses, directiveUse{group: group, location: location, list: list})
		}
	}
	addArgs := func(group string, args language.ArgumentDefinitionList) {
		for _, arg := range args {
			add(group+"("+arg.Name+":)", "ARGUMENT_DEFINITION", arg.Directives)
		}
	}

	for i, node := range v.doc.Definitions {
		switch node.Kind {
		case language.SchemaDefinitionNode, language.SchemaExtensionNode:
			add("schema", "SCHEMA", node.Schema.Directives)
		case language.TypeDefinitionNode, language.TypeExtensionNode:
			def := node.Type
			add("type "+def.Name, typeLocation(def.Kind), def.Directives)
			for _, f := range def.Fields {
				group := uniqueGroup(i, def.Name+"."+f.Name)
				if def.Kind == language.InputObject {
					add(group, "INPUT_FIELD_DEFINITION", f.Directives)
					continue
				}
				add(group, "FIELD_DEFINITION", f.Directives)
				addArgs(group, f.Arguments)
			}
			for _, ev := range def.EnumValues {
				add(uniqueGroup(i, def.Name+"."+ev.Name), "ENUM_VALUE", ev.Directives)
			}
		case language.DirectiveDefinitionNode:
			addArgs(uniqueGroup(i, "@"+node.Directive.Name), node.Directive.Arguments)
		}
	}
	return uses
}

// uniqueGroup scopes a member's directives to the node declaring it.
func uniqueGroup(index int, name string) string {
	return strconv.Itoa(index) + ":" + name
}

func typeLocation(kind language.DefinitionKind) string {
	switch kind {
	case language.Scalar:
		return "SCALAR"
	case language.Object:
		return "OBJECT"
	case language.Interface:
		return "INTERFACE"
	case language.Union:
		return "UNION"
	case language.Enum:
		return "ENUM"
	case language.InputObject:
		return "INPUT_OBJECT"
	}
	panic("unreachable")
}
