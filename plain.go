// Package compound provides document-level operations over tag trees:
// the plain JSON value form, RFC 6902 patching, and expression matching.
//
// The plain form maps tags onto ordinary JSON values for interop with
// JSON tooling. It is lossy about numeric width: every integral kind
// surfaces as a JSON number and comes back as a long, every floating
// kind comes back as a double. Width-exact interchange uses the typed
// JSON form in package tag instead.
package compound

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/compound-format/go-compound/tag"
)

// ToAny converts t to plain Go values: numbers to int64/float64, strings
// to string, lists to []any, compounds to map[string]any. Bytes surface
// as int64, not bool; whether a byte means a boolean is a property of
// the reader, not the document.
func ToAny(t *tag.Tag) any {
	switch t.Type {
	case tag.ByteType:
		return int64(t.Byte)
	case tag.ShortType:
		return int64(t.Short)
	case tag.IntType:
		return int64(t.Int)
	case tag.LongType:
		return t.Long
	case tag.FloatType:
		return float64(t.Float)
	case tag.DoubleType:
		return t.Double
	case tag.StringType:
		return t.String
	case tag.ListType:
		res := make([]any, len(t.Values))
		for i, v := range t.Values {
			res[i] = ToAny(v)
		}
		return res
	case tag.CompoundType:
		res := make(map[string]any, t.Len())
		for i, name := range t.Names {
			res[name] = ToAny(t.Values[i])
		}
		return res
	}
	return nil
}

// FromAny converts plain values back to tags. Integral numbers become
// longs, fractional ones doubles, booleans bytes. null has no tag kind
// and is rejected.
func FromAny(v any) (*tag.Tag, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("null is not representable as a tag")
	case bool:
		return tag.FromBool(x), nil
	case string:
		return tag.FromString(x), nil
	case int64:
		return tag.FromLong(x), nil
	case int:
		return tag.FromLong(int64(x)), nil
	case float64:
		if x == float64(int64(x)) {
			return tag.FromLong(int64(x)), nil
		}
		return tag.FromDouble(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return tag.FromLong(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return tag.FromDouble(f), nil
	case []any:
		vs := make([]*tag.Tag, len(x))
		for i, e := range x {
			et, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = et
		}
		return tag.FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*tag.Tag, len(x))
		for k, e := range x {
			et, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = et
		}
		return tag.FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// MarshalPlain renders t in the plain JSON value form.
func MarshalPlain(t *tag.Tag) ([]byte, error) {
	return json.Marshal(ToAny(t))
}

// UnmarshalPlain parses the plain JSON value form, re-inferring kinds.
func UnmarshalPlain(d []byte) (*tag.Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}
