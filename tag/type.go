package tag

import "fmt"

type Type int

const (
	ByteType Type = iota
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	StringType
	ListType
	CompoundType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ByteType:     "Byte",
		ShortType:    "Short",
		IntType:      "Int",
		LongType:     "Long",
		FloatType:    "Float",
		DoubleType:   "Double",
		StringType:   "String",
		ListType:     "List",
		CompoundType: "Compound",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Byte":     ByteType,
		"Short":    ShortType,
		"Int":      IntType,
		"Long":     LongType,
		"Float":    FloatType,
		"Double":   DoubleType,
		"String":   StringType,
		"List":     ListType,
		"Compound": CompoundType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		StringType,
		ListType,
		CompoundType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether t is one of the fixed-width numeric kinds.
func (t Type) IsNumeric() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}
