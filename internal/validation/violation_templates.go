package validation

import (
	"fmt"

	language "github.com/hanpama/schemaext/internal/language"
)

// NOTE: messages follow the wording of the reference GraphQL implementation;
// keep them stable, clients match on them.

func violationSchemaDefinedInExtension(pos *language.Position) *Violation {
	return violationWithPosition("Cannot define a new schema within a schema extension.", pos)
}

func violationMultipleSchemaDefinitions(pos *language.Position) *Violation {
	return violationWithPosition("Must provide only one schema definition.", pos)
}

func violationOperationTypeExists(op language.Operation, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Type for %s already defined in the schema. It cannot be redefined.", op),
		pos,
	)
}

func violationDuplicateOperationType(op language.Operation, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("There can be only one %s type in schema.", op),
		pos,
	)
}

func violationTypeExists(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Type %q already exists in the schema. It cannot also be defined in this type definition.", name),
		pos,
	)
}

func violationDuplicateType(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("There can be only one type named %q.", name),
		pos,
	)
}

func violationEnumValueExists(typeName, value string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Enum value \"%s.%s\" already exists in the schema. It cannot also be defined in this type extension.", typeName, value),
		pos,
	)
}

func violationDuplicateEnumValue(typeName, value string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Enum value \"%s.%s\" can only be defined once.", typeName, value),
		pos,
	)
}

func violationFieldExists(typeName, field string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Field \"%s.%s\" already exists in the schema. It cannot also be defined in this type extension.", typeName, field),
		pos,
	)
}

func violationDuplicateField(typeName, field string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Field \"%s.%s\" can only be defined once.", typeName, field),
		pos,
	)
}

func violationDirectiveExists(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Directive \"@%s\" already exists in the schema. It cannot be redefined.", name),
		pos,
	)
}

func violationDuplicateDirective(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("There can be only one directive named \"@%s\".", name),
		pos,
	)
}

func violationUnknownType(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("Unknown type %q.", name), pos)
}

func violationUnknownDirective(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("Unknown directive \"@%s\".", name), pos)
}

func violationMisplacedDirective(name, location string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Directive \"@%s\" may not be used on %s.", name, location),
		pos,
	)
}

func violationDirectiveNotUnique(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("The directive \"@%s\" can only be used once at this location.", name),
		pos,
	)
}

func violationExtendUndefinedType(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Cannot extend type %q because it is not defined.", name),
		pos,
	)
}

func violationExtendWrongKind(kind, name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Cannot extend non-%s type %q.", kind, name),
		pos,
	)
}

func violationUnknownDirectiveArgument(arg, directive string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Unknown argument %q on directive \"@%s\".", arg, directive),
		pos,
	)
}

func violationDuplicateArgument(arg string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("There can be only one argument named %q.", arg),
		pos,
	)
}

func violationMissingDirectiveArgument(directive, arg, typ string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Directive \"@%s\" argument %q of type %q is required, but it was not provided.", directive, arg, typ),
		pos,
	)
}
