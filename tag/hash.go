package tag

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the tag. Hashes are stable
// within a process, not across processes. It panics if t is nil.
func (t *Tag) Hash() uint64 {
	if t == nil {
		panic("tag: Hash called on nil tag")
	}
	var h maphash.Hash
	h.SetSeed(hashSeed)
	t.hashTo(&h)
	return h.Sum64()
}

func (t *Tag) hashTo(h *maphash.Hash) {
	h.WriteByte(byte(t.Type))
	var b [8]byte
	switch t.Type {
	case ByteType:
		h.WriteByte(byte(t.Byte))
	case ShortType:
		binary.LittleEndian.PutUint64(b[:], uint64(t.Short))
		h.Write(b[:])
	case IntType:
		binary.LittleEndian.PutUint64(b[:], uint64(t.Int))
		h.Write(b[:])
	case LongType:
		binary.LittleEndian.PutUint64(b[:], uint64(t.Long))
		h.Write(b[:])
	case FloatType:
		binary.LittleEndian.PutUint64(b[:], uint64(math.Float32bits(t.Float)))
		h.Write(b[:])
	case DoubleType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(t.Double))
		h.Write(b[:])
	case StringType:
		h.WriteString(t.String)
	case ListType:
		for _, v := range t.Values {
			v.hashTo(h)
		}
	case CompoundType:
		for i, name := range t.Names {
			h.WriteString(name)
			t.Values[i].hashTo(h)
		}
	}
}
