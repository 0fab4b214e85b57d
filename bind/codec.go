package bind

import "github.com/compound-format/go-compound/tag"

// Codec is an encode/decode pair between a native value and one tag
// kind. Both directions are pure; Decode fails with tag.ErrTypeMismatch
// when given the wrong kind.
type Codec[T any] struct {
	Encode func(T) *tag.Tag
	Decode func(*tag.Tag) (T, error)
}

var (
	ByteCodec = Codec[int8]{
		Encode: tag.FromByte,
		Decode: (*tag.Tag).AsByte,
	}
	ShortCodec = Codec[int16]{
		Encode: tag.FromShort,
		Decode: (*tag.Tag).AsShort,
	}
	IntCodec = Codec[int32]{
		Encode: tag.FromInt,
		Decode: (*tag.Tag).AsInt,
	}
	LongCodec = Codec[int64]{
		Encode: tag.FromLong,
		Decode: (*tag.Tag).AsLong,
	}
	FloatCodec = Codec[float32]{
		Encode: tag.FromFloat,
		Decode: (*tag.Tag).AsFloat,
	}
	DoubleCodec = Codec[float64]{
		Encode: tag.FromDouble,
		Decode: (*tag.Tag).AsDouble,
	}
	StringCodec = Codec[string]{
		Encode: tag.FromString,
		Decode: (*tag.Tag).AsString,
	}

	// BoolCodec stores booleans through the byte kind: encode gives
	// byte 1 or 0, decode accepts any byte with nonzero meaning true.
	BoolCodec = Codec[bool]{
		Encode: tag.FromBool,
		Decode: (*tag.Tag).AsBool,
	}

	// CompoundCodec is the identity pair over nested compounds: encode
	// stores the compound itself, decode narrows to the compound kind.
	CompoundCodec = Codec[*tag.Tag]{
		Encode: func(t *tag.Tag) *tag.Tag { return t },
		Decode: (*tag.Tag).AsCompound,
	}
)
