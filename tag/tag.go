package tag

import (
	"maps"
	"slices"
)

// Tag is a single value in a compound document, a recursive tagged union.
// The Type field selects which of the remaining fields carries the value.
//
// For CompoundType, Names[i] is the key for Values[i] and the two slices
// always have the same length. Keys within a compound are unique. For
// ListType only Values is populated.
type Tag struct {
	Type Type

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	Names  []string
	Values []*Tag
}

func FromByte(v int8) *Tag {
	return &Tag{Type: ByteType, Byte: v}
}

func FromShort(v int16) *Tag {
	return &Tag{Type: ShortType, Short: v}
}

func FromInt(v int32) *Tag {
	return &Tag{Type: IntType, Int: v}
}

func FromLong(v int64) *Tag {
	return &Tag{Type: LongType, Long: v}
}

func FromFloat(v float32) *Tag {
	return &Tag{Type: FloatType, Float: v}
}

func FromDouble(v float64) *Tag {
	return &Tag{Type: DoubleType, Double: v}
}

func FromString(v string) *Tag {
	return &Tag{Type: StringType, String: v}
}

// FromBool encodes a boolean as a byte tag, 1 for true and 0 for false.
// There is no distinct boolean kind on the wire.
func FromBool(v bool) *Tag {
	b := int8(0)
	if v {
		b = 1
	}
	return &Tag{Type: ByteType, Byte: b}
}

// NewCompound returns an empty compound tag.
func NewCompound() *Tag {
	return &Tag{Type: CompoundType}
}

// FromMap builds a compound from m with keys in sorted order.
func FromMap(m map[string]*Tag) *Tag {
	res := NewCompound()
	keys := slices.Sorted(maps.Keys(m))
	for _, key := range keys {
		res.Names = append(res.Names, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// ToMap returns the entries of a compound as a map, or nil if t is not a
// compound.
func ToMap(t *Tag) map[string]*Tag {
	if t.Type != CompoundType {
		return nil
	}
	res := make(map[string]*Tag, len(t.Names))
	for i, name := range t.Names {
		res[name] = t.Values[i]
	}
	return res
}

// FromSlice builds a list tag from vs.
func FromSlice(vs []*Tag) *Tag {
	return &Tag{Type: ListType, Values: vs}
}

// Has reports whether the compound t has an entry under key. It is false
// for non-compound tags.
func (t *Tag) Has(key string) bool {
	return t.Get(key) != nil
}

// Get returns the entry under key, or nil if there is none or t is not a
// compound.
func (t *Tag) Get(key string) *Tag {
	if t.Type != CompoundType {
		return nil
	}
	for i, name := range t.Names {
		if name == key {
			return t.Values[i]
		}
	}
	return nil
}

// Put stores v under key, replacing any existing entry. t must be a
// compound.
func (t *Tag) Put(key string, v *Tag) {
	if t.Type != CompoundType {
		panic("tag: Put on non-compound " + t.Type.String())
	}
	for i, name := range t.Names {
		if name == key {
			t.Values[i] = v
			return
		}
	}
	t.Names = append(t.Names, key)
	t.Values = append(t.Values, v)
}

// Delete removes the entry under key, reporting whether one was present.
func (t *Tag) Delete(key string) bool {
	if t.Type != CompoundType {
		return false
	}
	for i, name := range t.Names {
		if name == key {
			t.Names = slices.Delete(t.Names, i, i+1)
			t.Values = slices.Delete(t.Values, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of entries of a compound or list, and 0 for
// leaf tags.
func (t *Tag) Len() int {
	return len(t.Values)
}

// Keys returns the key sequence of a compound in insertion order.
func (t *Tag) Keys() []string {
	return slices.Clone(t.Names)
}

func (t *Tag) Clone() *Tag {
	res := &Tag{}
	return t.CloneTo(res)
}

func (t *Tag) CloneTo(dst *Tag) *Tag {
	dst.Type = t.Type
	dst.Byte = t.Byte
	dst.Short = t.Short
	dst.Int = t.Int
	dst.Long = t.Long
	dst.Float = t.Float
	dst.Double = t.Double
	dst.String = t.String
	dst.Names = slices.Clone(t.Names)
	if t.Values != nil {
		dst.Values = make([]*Tag, len(t.Values))
		for i, v := range t.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Visit walks t depth first. f is called twice per tag, before and after
// its children, with isPost telling the two calls apart. Returning false
// from the pre call skips the children.
func (t *Tag) Visit(f func(t *Tag, isPost bool) (bool, error)) error {
	dive, err := f(t, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range t.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(t, true); err != nil {
		return err
	}
	return nil
}
