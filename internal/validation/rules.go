package validation

import (
	language "github.com/hanpama/schemaext/internal/language"
	schema "github.com/hanpama/schemaext/internal/schema"
)

func (v *validator) loneSchemaDefinition() {
	alreadyDefined := v.base != nil && (v.base.ASTNode != nil ||
		v.base.QueryType != "" || v.base.MutationType != "" || v.base.SubscriptionType != "")
	count := 0
	for _, node := range v.doc.Definitions {
		if node.Kind != language.SchemaDefinitionNode {
			continue
		}
		if alreadyDefined {
			v.report(violationSchemaDefinedInExtension(node.Position()))
			continue
		}
		if count > 0 {
			v.report(violationMultipleSchemaDefinitions(node.Position()))
		}
		count++
	}
}

func (v *validator) uniqueOperationTypes() {
	defined := make(map[language.Operation]bool)
	for _, node := range v.doc.Definitions {
		if node.Kind != language.SchemaDefinitionNode && node.Kind != language.SchemaExtensionNode {
			continue
		}
		for _, opType := range node.Schema.OperationTypes {
			switch {
			case v.base != nil && v.base.RootTypeName(opType.Operation) != "":
				v.report(violationOperationTypeExists(opType.Operation, opType.Position))
			case defined[opType.Operation]:
				v.report(violationDuplicateOperationType(opType.Operation, opType.Position))
			default:
				defined[opType.Operation] = true
			}
		}
	}
}

func (v *validator) uniqueTypeNames() {
	seen := make(map[string]bool)
	for _, node := range v.doc.Definitions {
		if node.Kind != language.TypeDefinitionNode {
			continue
		}
		name := node.Name()
		switch {
		case v.baseType(name) != nil:
			v.report(violationTypeExists(name, node.Position()))
		case seen[name]:
			v.report(violationDuplicateType(name, node.Position()))
		default:
			seen[name] = true
		}
	}
}

func (v *validator) uniqueEnumValueNames() {
	known := make(map[string]map[string]bool)
	for _, node := range v.doc.Definitions {
		if node.Type == nil || node.Type.Kind != language.Enum {
			continue
		}
		def := node.Type
		existing := v.baseType(def.Name)
		if known[def.Name] == nil {
			known[def.Name] = make(map[string]bool)
		}
		for _, ev := range def.EnumValues {
			switch {
			case existing != nil && existing.Kind == schema.TypeKindEnum && existing.EnumValue(ev.Name) != nil:
				v.report(violationEnumValueExists(def.Name, ev.Name, ev.Position))
			case known[def.Name][ev.Name]:
				v.report(violationDuplicateEnumValue(def.Name, ev.Name, ev.Position))
			default:
				known[def.Name][ev.Name] = true
			}
		}
	}
}

func (v *validator) uniqueFieldDefinitionNames() {
	known := make(map[string]map[string]bool)
	for _, node := range v.doc.Definitions {
		if node.Type == nil {
			continue
		}
		def := node.Type
		switch def.Kind {
		case language.Object, language.Interface, language.InputObject:
		default:
			continue
		}
		existing := v.baseType(def.Name)
		if known[def.Name] == nil {
			known[def.Name] = make(map[string]bool)
		}
		for _, f := range def.Fields {
			switch {
			case hasField(existing, f.Name):
				v.report(violationFieldExists(def.Name, f.Name, f.Position))
			case known[def.Name][f.Name]:
				v.report(violationDuplicateField(def.Name, f.Name, f.Position))
			default:
				known[def.Name][f.Name] = true
			}
		}
	}
}

func hasField(t *schema.Type, name string) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case schema.TypeKindObject, schema.TypeKindInterface:
		return t.Field(name) != nil
	case schema.TypeKindInputObject:
		return t.InputField(name) != nil
	}
	return false
}

func (v *validator) uniqueDirectiveNames() {
	seen := make(map[string]bool)
	for _, node := range v.doc.Definitions {
		if node.Kind != language.DirectiveDefinitionNode {
			continue
		}
		name := node.Name()
		switch {
		case v.base != nil && v.base.Directive(name) != nil:
			v.report(violationDirectiveExists(name, node.Position()))
		case seen[name]:
			v.report(violationDuplicateDirective(name, node.Position()))
		default:
			seen[name] = true
		}
	}
}

func (v *validator) knownTypeNames() {
	check := func(name string, pos *language.Position) {
		if v.typeDefs[name] != nil || v.baseType(name) != nil || schema.IsBuiltInTypeName(name) {
			return
		}
		v.report(violationUnknownType(name, pos))
	}
	var checkRef func(t *language.Type)
	checkRef = func(t *language.Type) {
		if t == nil {
			return
		}
		if t.Elem != nil {
			checkRef(t.Elem)
			return
		}
		check(t.NamedType, t.Position)
	}
	checkArgs := func(args language.ArgumentDefinitionList) {
		for _, arg := range args {
			checkRef(arg.Type)
		}
	}

	for _, node := range v.doc.Definitions {
		switch node.Kind {
		case language.SchemaDefinitionNode, language.SchemaExtensionNode:
			for _, opType := range node.Schema.OperationTypes {
				check(opType.Type, opType.Position)
			}
		case language.TypeDefinitionNode, language.TypeExtensionNode:
			def := node.Type
			for _, name := range def.Interfaces {
				check(name, def.Position)
			}
			for _, name := range def.Types {
				check(name, def.Position)
			}
			for _, f := range def.Fields {
				checkRef(f.Type)
				checkArgs(f.Arguments)
			}
		case language.DirectiveDefinitionNode:
			checkArgs(node.Directive.Arguments)
		}
	}
}

func (v *validator) knownDirectives() {
	for _, use := range v.directiveUses() {
		for _, d := range use.list {
			info := v.directives[d.Name]
			if info == nil {
				v.report(violationUnknownDirective(d.Name, d.Position))
				continue
			}
			if !info.locations[use.location] {
				v.report(violationMisplacedDirective(d.Name, use.location, d.Position))
			}
		}
	}
}

func (v *validator) uniqueDirectivesPerLocation() {
	seen := make(map[string]map[string]bool)
	for _, use := range v.directiveUses() {
		if seen[use.group] == nil {
			seen[use.group] = make(map[string]bool)
		}
		for _, d := range use.list {
			info := v.directives[d.Name]
			if info == nil || info.repeatable {
				continue
			}
			if seen[use.group][d.Name] {
				v.report(violationDirectiveNotUnique(d.Name, d.Position))
				continue
			}
			seen[use.group][d.Name] = true
		}
	}
}

func (v *validator) possibleTypeExtensions() {
	for _, node := range v.doc.Definitions {
		if node.Kind != language.TypeExtensionNode {
			continue
		}
		ext := node.Type
		var expected string
		if def := v.typeDefs[ext.Name]; def != nil {
			expected = kindWord(def.Kind)
		} else if existing := v.baseType(ext.Name); existing != nil {
			expected = kindWord(definitionKind(existing.Kind))
		} else {
			v.report(violationExtendUndefinedType(ext.Name, ext.Position))
			continue
		}
		if got := kindWord(ext.Kind); got != expected {
			v.report(violationExtendWrongKind(got, ext.Name, ext.Position))
		}
	}
}

func definitionKind(kind schema.TypeKind) language.DefinitionKind {
	switch kind {
	case schema.TypeKindScalar:
		return language.Scalar
	case schema.TypeKindObject:
		return language.Object
	case schema.TypeKindInterface:
		return language.Interface
	case schema.TypeKindUnion:
		return language.Union
	case schema.TypeKindEnum:
		return language.Enum
	case schema.TypeKindInputObject:
		return language.InputObject
	}
	panic("unreachable")
}

func kindWord(kind language.DefinitionKind) string {
	switch kind {
	case language.Scalar:
		return "scalar"
	case language.Object:
		return "object"
	case language.Interface:
		return "interface"
	case language.Union:
		return "union"
	case language.Enum:
		return "enum"
	case language.InputObject:
		return "input object"
	}
	panic("unreachable")
}

func (v *validator) knownArgumentNamesOnDirectives() {
	for _, use := range v.directiveUses() {
		for _, d := range use.list {
			info := v.directives[d.Name]
			if info == nil {
				continue
			}
			for _, arg := range d.Arguments {
				if !info.hasArg(arg.Name) {
					v.report(violationUnknownDirectiveArgument(arg.Name, d.Name, arg.Position))
				}
			}
		}
	}
}

func (info *directiveInfo) hasArg(name string) bool {
	for _, arg := range info.args {
		if arg.name == name {
			return true
		}
	}
	return false
}

func (v *validator) uniqueArgumentNames() {
	for _, use := range v.directiveUses() {
		for _, d := range use.list {
			seen := make(map[string]bool)
			for _, arg := range d.Arguments {
				if seen[arg.Name] {
					v.report(violationDuplicateArgument(arg.Name, arg.Position))
					continue
				}
				seen[arg.Name] = true
			}
		}
	}
}

func (v *validator) providedRequiredArgumentsOnDirectives() {
	for _, use := range v.directiveUses() {
		for _, d := range use.list {
			info := v.directives[d.Name]
			if info == nil {
				continue
			}
			for _, arg := range info.args {
				if arg.required && d.Arguments.ForName(arg.name) == nil {
					v.report(violationMissingDirectiveArgument(d.Name, arg.name, arg.typ, d.Position))
				}
			}
		}
	}
}
