package ir

// Field is a declared field, static or instance, on some type.
// Identity is by pointer: the same declared field must always be
// referenced through the same *Field.
type Field struct {
	Name      string
	Type      *Type
	Declaring *Type
	Static    bool
}

// NewField returns a new field declaration.
func NewField(name string, typ, declaring *Type, static bool) *Field {
	return &Field{Name: name, Type: typ, Declaring: declaring, Static: static}
}

func (f *Field) String() string {
	if f == nil {
		return "<nil field>"
	}
	return f.Declaring.String() + "." + f.Name
}
