package schema

// NewSchema creates an empty schema. Built-in types and directives are not
// included; use New to assemble a complete schema from a Config.
func NewSchema(description string) *Schema {
	return &Schema{
		Types:       make(map[string]*Type),
		Description: description,
	}
}

func (s *Schema) SetQueryType(name string) *Schema {
	s.QueryType = name
	return s
}

func (s *Schema) SetMutationType(name string) *Schema {
	s.MutationType = name
	return s
}

func (s *Schema) SetSubscriptionType(name string) *Schema {
	s.SubscriptionType = name
	return s
}

// AddType registers t under its name, replacing any previous entry.
func (s *Schema) AddType(t *Type) *Schema {
	s.Types[t.Name] = t
	return s
}

// AddDirective appends d, replacing a previously added directive of the same name in place.
func (s *Schema) AddDirective(d *Directive) *Schema {
	for i, existing := range s.Directives {
		if existing.Name == d.Name {
			s.Directives[i] = d
			return s
		}
	}
	s.Directives = append(s.Directives, d)
	return s
}

func NewType(name string, kind TypeKind, description string) *Type {
	return &Type{Name: name, Kind: kind, Description: description}
}

func (t *Type) AddField(f *Field) *Type {
	t.Fields = append(t.Fields, f)
	return t
}

func (t *Type) AddInterface(name string) *Type {
	t.Interfaces = append(t.Interfaces, name)
	return t
}

func (t *Type) AddPossibleType(name string) *Type {
	t.PossibleTypes = append(t.PossibleTypes, name)
	return t
}

func (t *Type) AddEnumValue(v *EnumValue) *Type {
	t.EnumValues = append(t.EnumValues, v)
	return t
}

func (t *Type) AddInputField(v *InputValue) *Type {
	t.InputFields = append(t.InputFields, v)
	return t
}

func (t *Type) SetOneOf(oneOf bool) *Type {
	t.OneOf = oneOf
	return t
}

func (t *Type) SetSpecifiedByURL(url string) *Type {
	t.SpecifiedByURL = &url
	return t
}

func NewField(name, description string, typ *TypeRef) *Field {
	return &Field{Name: name, Description: description, Type: typ}
}

func (f *Field) AddArgument(arg *InputValue) *Field {
	f.Arguments = append(f.Arguments, arg)
	return f
}

func (f *Field) Deprecate(reason string) *Field {
	f.IsDeprecated = true
	f.DeprecationReason = reason
	return f
}

// NewEnumValue creates an enum value whose internal value is its name.
func NewEnumValue(name, description string) *EnumValue {
	return &EnumValue{Name: name, Description: description, Value: name}
}

// SetValue overrides the internal value.
func (v *EnumValue) SetValue(value any) *EnumValue {
	v.Value = value
	return v
}

func (v *EnumValue) Deprecate(reason string) *EnumValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func NewInputValue(name, description string, typ *TypeRef) *InputValue {
	return &InputValue{Name: name, Description: description, Type: typ}
}

func (v *InputValue) SetDefault(value any) *InputValue {
	v.DefaultValue = value
	return v
}

func (v *InputValue) Deprecate(reason string) *InputValue {
	v.IsDeprecated = true
	v.DeprecationReason = reason
	return v
}

func NewDirective(name, description string) *Directive {
	return &Directive{Name: name, Description: description}
}

func (d *Directive) SetRepeatable(repeatable bool) *Directive {
	d.IsRepeatable = repeatable
	return d
}

func (d *Directive) AddLocation(locations ...string) *Directive {
	d.Locations = append(d.Locations, locations...)
	return d
}

func (d *Directive) AddArgument(arg *InputValue) *Directive {
	d.Arguments = append(d.Arguments, arg)
	return d
}

// Argument looks up an argument by name.
func (d *Directive) Argument(name string) *InputValue {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// Argument looks up an argument by name.
func (f *Field) Argument(name string) *InputValue {
	for _, arg := range f.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}
