package savedoc

// Struct is an ordered set of properties. Indices are assigned on append,
// so they are always zero-based and contiguous.
type Struct struct {
	Type  string
	props []Property
}

// NewStruct creates an empty struct of the given backing type
func NewStruct(structType string) *Struct {
	return &Struct{Type: structType}
}

func (s *Struct) add(p Property) *Struct {
	p.Index = len(s.props)
	s.props = append(s.props, p)
	return s
}

// Int appends an IntProperty
func (s *Struct) Int(name string, v int) *Struct {
	return s.add(Property{Name: name, Type: TypeInt, Value: FormatInt(v)})
}

// Str appends a StrProperty
func (s *Struct) Str(name, v string) *Struct {
	return s.add(Property{Name: name, Type: TypeStr, Value: v})
}

// Ident appends a NameProperty. Empty identifiers are written as None.
func (s *Struct) Ident(name, v string) *Struct {
	if v == "" {
		v = EnumNone
	}
	return s.add(Property{Name: name, Type: TypeName, Value: v})
}

// Bool appends a BoolProperty
func (s *Struct) Bool(name string, v bool) *Struct {
	return s.add(Property{Name: name, Type: TypeBool, Value: FormatBool(v)})
}

// Float appends a FloatProperty
func (s *Struct) Float(name string, v float64) *Struct {
	return s.add(Property{Name: name, Type: TypeFloat, Value: FormatFloat(v)})
}

// Double appends a DoubleProperty
func (s *Struct) Double(name string, v float64) *Struct {
	return s.add(Property{Name: name, Type: TypeDouble, Value: FormatFloat(v)})
}

// Enum appends a ByteProperty holding enumType::member
func (s *Struct) Enum(name, enumType, member string) *Struct {
	return s.add(Property{
		Name:     name,
		Type:     TypeByte,
		Value:    QualifyEnum(enumType, member),
		EnumType: enumType,
	})
}

// Text appends a localized display string
func (s *Struct) Text(name, value string) *Struct {
	return s.add(Property{
		Name:       name,
		Type:       TypeStruct,
		StructType: StructTypeText,
		Text:       &Text{Key: name, Value: value},
	})
}

// Nested appends a StructProperty whose body is child
func (s *Struct) Nested(name string, child *Struct) *Struct {
	if child == nil {
		child = NewStruct("")
	}
	return s.add(Property{
		Name:       name,
		Type:       TypeStruct,
		StructType: child.Type,
		Child:      child,
	})
}

// Array appends an ArrayProperty of structs. A nil or empty slice is a valid
// zero-length array and still gets its sub-structure entry.
func (s *Struct) Array(name string, elements []*Struct) *Struct {
	return s.add(Property{
		Name:      name,
		Type:      TypeArray,
		InnerType: TypeStruct,
		Elements:  append([]*Struct{}, elements...),
	})
}

// Len returns the number of properties
func (s *Struct) Len() int {
	return len(s.props)
}

// Properties returns the properties in index order
func (s *Struct) Properties() []Property {
	out := make([]Property, len(s.props))
	copy(out, s.props)
	return out
}

// NestedProperties returns the struct- and array-typed properties in index order
func (s *Struct) NestedProperties() []Property {
	var out []Property
	for _, p := range s.props {
		if p.Type.Nested() {
			out = append(out, p)
		}
	}
	return out
}

// Lookup returns the property called name
func (s *Struct) Lookup(name string) (Property, bool) {
	for _, p := range s.props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
