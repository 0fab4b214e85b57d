package tag

import "fmt"

// The As accessors narrow a tag to one concrete kind. They fail with an
// error wrapping ErrTypeMismatch when the tag holds a different kind.

func (t *Tag) AsByte() (int8, error) {
	if t.Type != ByteType {
		return 0, mismatch(ByteType, t.Type)
	}
	return t.Byte, nil
}

func (t *Tag) AsShort() (int16, error) {
	if t.Type != ShortType {
		return 0, mismatch(ShortType, t.Type)
	}
	return t.Short, nil
}

func (t *Tag) AsInt() (int32, error) {
	if t.Type != IntType {
		return 0, mismatch(IntType, t.Type)
	}
	return t.Int, nil
}

func (t *Tag) AsLong() (int64, error) {
	if t.Type != LongType {
		return 0, mismatch(LongType, t.Type)
	}
	return t.Long, nil
}

func (t *Tag) AsFloat() (float32, error) {
	if t.Type != FloatType {
		return 0, mismatch(FloatType, t.Type)
	}
	return t.Float, nil
}

func (t *Tag) AsDouble() (float64, error) {
	if t.Type != DoubleType {
		return 0, mismatch(DoubleType, t.Type)
	}
	return t.Double, nil
}

func (t *Tag) AsString() (string, error) {
	if t.Type != StringType {
		return "", mismatch(StringType, t.Type)
	}
	return t.String, nil
}

// AsBool narrows to the byte kind; any nonzero byte is true.
func (t *Tag) AsBool() (bool, error) {
	b, err := t.AsByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (t *Tag) AsCompound() (*Tag, error) {
	if t.Type != CompoundType {
		return nil, mismatch(CompoundType, t.Type)
	}
	return t, nil
}

func (t *Tag) AsList() ([]*Tag, error) {
	if t.Type != ListType {
		return nil, mismatch(ListType, t.Type)
	}
	return t.Values, nil
}

func mismatch(want, got Type) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, got)
}
