package tag

import (
	"encoding/json"
	"fmt"
)

// The typed JSON form is the document exchange encoding: it is lossless
// with respect to kind and width, unlike the plain JSON value form. Each
// tag marshals as an object with a "type" discriminator and one value
// field selected by the kind.

type tagBase struct {
	Type   Type     `json:"type"`
	Names  []string `json:"names,omitempty"`
	Values []*Tag   `json:"values,omitempty"`
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	base := &tagBase{
		Type:   t.Type,
		Names:  t.Names,
		Values: t.Values,
	}
	switch t.Type {
	case ByteType:
		type C struct {
			tagBase
			Byte int8 `json:"byte"`
		}
		return json.Marshal(C{tagBase: *base, Byte: t.Byte})
	case ShortType:
		type C struct {
			tagBase
			Short int16 `json:"short"`
		}
		return json.Marshal(C{tagBase: *base, Short: t.Short})
	case IntType:
		type C struct {
			tagBase
			Int int32 `json:"int"`
		}
		return json.Marshal(C{tagBase: *base, Int: t.Int})
	case LongType:
		type C struct {
			tagBase
			Long int64 `json:"long"`
		}
		return json.Marshal(C{tagBase: *base, Long: t.Long})
	case FloatType:
		type C struct {
			tagBase
			Float float32 `json:"float"`
		}
		return json.Marshal(C{tagBase: *base, Float: t.Float})
	case DoubleType:
		type C struct {
			tagBase
			Double float64 `json:"double"`
		}
		return json.Marshal(C{tagBase: *base, Double: t.Double})
	case StringType:
		type C struct {
			tagBase
			String string `json:"string"`
		}
		return json.Marshal(C{tagBase: *base, String: t.String})
	default:
		return json.Marshal(base)
	}
}

func (t *Tag) UnmarshalJSON(d []byte) error {
	type C struct {
		tagBase
		Byte   int8    `json:"byte"`
		Short  int16   `json:"short"`
		Int    int32   `json:"int"`
		Long   int64   `json:"long"`
		Float  float32 `json:"float"`
		Double float64 `json:"double"`
		String string  `json:"string"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	t.Type = tmp.Type
	t.Byte = tmp.Byte
	t.Short = tmp.Short
	t.Int = tmp.Int
	t.Long = tmp.Long
	t.Float = tmp.Float
	t.Double = tmp.Double
	t.String = tmp.String
	t.Names = tmp.Names
	t.Values = tmp.Values

	switch t.Type {
	case CompoundType:
		if len(t.Names) != len(t.Values) {
			return fmt.Errorf("compound with %d names and %d values", len(t.Names), len(t.Values))
		}
		seen := make(map[string]bool, len(t.Names))
		for _, name := range t.Names {
			if seen[name] {
				return fmt.Errorf("duplicate compound key %q", name)
			}
			seen[name] = true
		}
	case ListType:
		if len(t.Names) != 0 {
			return fmt.Errorf("list with %d names", len(t.Names))
		}
	default:
		if len(t.Names) != 0 || len(t.Values) != 0 {
			return fmt.Errorf("%s tag with children", t.Type)
		}
	}
	return nil
}

// ToJSON marshals t in the typed JSON form.
func ToJSON(t *Tag) ([]byte, error) {
	return json.Marshal(t)
}

// FromJSON unmarshals the typed JSON form.
func FromJSON(d []byte) (*Tag, error) {
	t := &Tag{}
	if err := json.Unmarshal(d, t); err != nil {
		return nil, err
	}
	return t, nil
}
