package models

// FieldDescriptor describes one attribute of a generated data class.
type FieldDescriptor struct {
	Name      string
	Type      string // Java type tag: "String", "Integer", "BigDecimal", or any identifier
	Required  bool
	MaxLength *int
	MinValue  *string
	MaxValue  *string
	Pattern   *string
	Unique    bool
	Nullable  bool
	Comment   string
}

// NewField creates a FieldDescriptor with default column semantics (nullable, not unique).
func NewField(name, typ string) FieldDescriptor {
	return FieldDescriptor{Name: name, Type: typ, Nullable: true}
}
