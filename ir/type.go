package ir

// Type is a declared type in the analyzed program. Identity is by
// pointer: the frontend that builds a Program must intern types so
// that the same declared type always yields the same *Type.
type Type struct {
	Name string

	// Interfaces this type implements, and supertypes it extends.
	// Populated by the frontend (via NewType); the pointer analysis core never inspects these directly, only
	// the external class hierarchy collaborator does.
	Supers []*Type
}

func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	return t.Name
}

// NewType returns a new named type with no declared supertypes.
func NewType(name string, supers ...*Type) *Type {
	return &Type{Name: name, Supers: supers}
}
