package gomap

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/compound-format/go-compound/tag"
)

// Marshaler is implemented by types that take over their own conversion
// to a tag.
type Marshaler interface {
	MarshalTag() (*tag.Tag, error)
}

// ToTag converts a Go value to a tag.
func ToTag(v any) (*tag.Tag, error) {
	if v == nil {
		return nil, &MarshalError{Message: "cannot marshal nil"}
	}
	return toTag(reflect.ValueOf(v), "")
}

func toTag(val reflect.Value, fieldPath string) (*tag.Tag, error) {
	if m, ok := val.Interface().(Marshaler); ok {
		t, err := m.MarshalTag()
		if err != nil {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "MarshalTag failed", Err: err}
		}
		return t, nil
	}
	if t, ok := val.Interface().(*tag.Tag); ok {
		return t.Clone(), nil
	}

	switch val.Kind() {
	case reflect.Bool:
		return tag.FromBool(val.Bool()), nil
	case reflect.Int8:
		return tag.FromByte(int8(val.Int())), nil
	case reflect.Int16:
		return tag.FromShort(int16(val.Int())), nil
	case reflect.Int32:
		return tag.FromInt(int32(val.Int())), nil
	case reflect.Int, reflect.Int64:
		return tag.FromLong(val.Int()), nil
	case reflect.Uint8:
		return tag.FromByte(int8(val.Uint())), nil
	case reflect.Uint16:
		return tag.FromShort(int16(val.Uint())), nil
	case reflect.Uint32:
		return tag.FromInt(int32(val.Uint())), nil
	case reflect.Uint, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d overflows the long kind", u),
			}
		}
		return tag.FromLong(int64(u)), nil
	case reflect.Float32:
		return tag.FromFloat(float32(val.Float())), nil
	case reflect.Float64:
		return tag.FromDouble(val.Float()), nil
	case reflect.String:
		return tag.FromString(val.String()), nil
	case reflect.Pointer:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "cannot marshal nil pointer"}
		}
		return toTag(val.Elem(), fieldPath)
	case reflect.Interface:
		if val.IsNil() {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "cannot marshal nil interface"}
		}
		return toTag(val.Elem(), fieldPath)
	case reflect.Struct:
		return structToTag(val, fieldPath)
	case reflect.Map:
		return mapToTag(val, fieldPath)
	case reflect.Slice, reflect.Array:
		return sliceToTag(val, fieldPath)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
}

func structToTag(val reflect.Value, fieldPath string) (*tag.Tag, error) {
	res := tag.NewCompound()
	for _, info := range structFields(val.Type()) {
		fv := val.Field(info.Index)
		if info.OmitEmpty && fv.IsZero() {
			continue
		}
		// nil pointer fields are simply absent
		if fv.Kind() == reflect.Pointer && fv.IsNil() {
			continue
		}
		ft, err := toTag(fv, joinPath(fieldPath, info.TagName))
		if err != nil {
			return nil, err
		}
		res.Put(info.TagName, ft)
	}
	return res, nil
}

func mapToTag(val reflect.Value, fieldPath string) (*tag.Tag, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type %s is not string", val.Type().Key()),
		}
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	res := tag.NewCompound()
	for _, k := range keys {
		vt, err := toTag(val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key())), joinPath(fieldPath, k))
		if err != nil {
			return nil, err
		}
		res.Put(k, vt)
	}
	return res, nil
}

func sliceToTag(val reflect.Value, fieldPath string) (*tag.Tag, error) {
	vs := make([]*tag.Tag, val.Len())
	for i := 0; i < val.Len(); i++ {
		vt, err := toTag(val.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		vs[i] = vt
	}
	return tag.FromSlice(vs), nil
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
