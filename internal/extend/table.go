package extend

import (
	"fmt"

	schema "github.com/hanpama/schemaext/internal/schema"
)

// typeTable maps every type name of the schema being built to its new type.
// It is owned by a single ExtendSchema call.
type typeTable struct {
	types map[string]*schema.Type
	order []string
}

func newTypeTable() *typeTable {
	return &typeTable{types: make(map[string]*schema.Type)}
}

// set registers t, replacing any type registered under the same name.
func (tt *typeTable) set(t *schema.Type) {
	if _, ok := tt.types[t.Name]; !ok {
		tt.order = append(tt.order, t.Name)
	}
	tt.types[t.Name] = t
}

// lookup returns the type registered under name. Names are validated before
// the table is built, so a miss is a defect.
func (tt *typeTable) lookup(name string) *schema.Type {
	t, ok := tt.types[name]
	if !ok {
		panic(fmt.Sprintf("Unknown type: %q.", name))
	}
	return t
}

// values returns the registered types in registration order.
func (tt *typeTable) values() []*schema.Type {
	out := make([]*schema.Type, 0, len(tt.order))
	for _, name := range tt.order {
		out = append(out, tt.types[name])
	}
	return out
}
