package gomap

import (
	"fmt"
	"reflect"

	"github.com/compound-format/go-compound/tag"
)

// Unmarshaler is implemented by types that take over their own
// conversion from a tag.
type Unmarshaler interface {
	UnmarshalTag(*tag.Tag) error
}

// FromTag converts a tag to a Go value. v must be a non-nil pointer to
// the target. Compound keys with no matching field are ignored; fields
// with no matching key are left at their current value.
func FromTag(t *tag.Tag, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Pointer {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}
	return fromTag(t, val.Elem(), "")
}

func fromTag(t *tag.Tag, val reflect.Value, fieldPath string) error {
	if t == nil {
		return &UnmarshalError{FieldPath: fieldPath, Message: "tag is nil"}
	}
	if val.CanAddr() {
		if u, ok := val.Addr().Interface().(Unmarshaler); ok {
			if err := u.UnmarshalTag(t); err != nil {
				return &UnmarshalError{FieldPath: fieldPath, Message: "UnmarshalTag failed", Err: err}
			}
			return nil
		}
	}
	if val.Type() == reflect.TypeOf((*tag.Tag)(nil)) {
		val.Set(reflect.ValueOf(t.Clone()))
		return nil
	}

	switch val.Kind() {
	case reflect.Bool:
		b, err := t.AsBool()
		if err != nil {
			return typeErr(fieldPath, tag.ByteType, t.Type)
		}
		val.SetBool(b)
	case reflect.Int8:
		b, err := t.AsByte()
		if err != nil {
			return typeErr(fieldPath, tag.ByteType, t.Type)
		}
		val.SetInt(int64(b))
	case reflect.Int16:
		s, err := t.AsShort()
		if err != nil {
			return typeErr(fieldPath, tag.ShortType, t.Type)
		}
		val.SetInt(int64(s))
	case reflect.Int32:
		i, err := t.AsInt()
		if err != nil {
			return typeErr(fieldPath, tag.IntType, t.Type)
		}
		val.SetInt(int64(i))
	case reflect.Int, reflect.Int64:
		l, err := t.AsLong()
		if err != nil {
			return typeErr(fieldPath, tag.LongType, t.Type)
		}
		val.SetInt(l)
	case reflect.Uint8:
		b, err := t.AsByte()
		if err != nil {
			return typeErr(fieldPath, tag.ByteType, t.Type)
		}
		val.SetUint(uint64(uint8(b)))
	case reflect.Uint16:
		s, err := t.AsShort()
		if err != nil {
			return typeErr(fieldPath, tag.ShortType, t.Type)
		}
		val.SetUint(uint64(uint16(s)))
	case reflect.Uint32:
		i, err := t.AsInt()
		if err != nil {
			return typeErr(fieldPath, tag.IntType, t.Type)
		}
		val.SetUint(uint64(uint32(i)))
	case reflect.Uint, reflect.Uint64:
		l, err := t.AsLong()
		if err != nil {
			return typeErr(fieldPath, tag.LongType, t.Type)
		}
		if l < 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%d underflows %s", l, val.Type()),
			}
		}
		val.SetUint(uint64(l))
	case reflect.Float32:
		f, err := t.AsFloat()
		if err != nil {
			return typeErr(fieldPath, tag.FloatType, t.Type)
		}
		val.SetFloat(float64(f))
	case reflect.Float64:
		d, err := t.AsDouble()
		if err != nil {
			return typeErr(fieldPath, tag.DoubleType, t.Type)
		}
		val.SetFloat(d)
	case reflect.String:
		s, err := t.AsString()
		if err != nil {
			return typeErr(fieldPath, tag.StringType, t.Type)
		}
		val.SetString(s)
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromTag(t, val.Elem(), fieldPath)
	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &UnmarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("unsupported type %s", val.Type()),
			}
		}
		v, err := anyFromTag(t, fieldPath)
		if err != nil {
			return err
		}
		val.Set(reflect.ValueOf(v))
	case reflect.Struct:
		return structFromTag(t, val, fieldPath)
	case reflect.Map:
		return mapFromTag(t, val, fieldPath)
	case reflect.Slice:
		return sliceFromTag(t, val, fieldPath)
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported type %s", val.Type()),
		}
	}
	return nil
}

func structFromTag(t *tag.Tag, val reflect.Value, fieldPath string) error {
	if t.Type != tag.CompoundType {
		return typeErr(fieldPath, tag.CompoundType, t.Type)
	}
	for _, info := range structFields(val.Type()) {
		entry := t.Get(info.TagName)
		if entry == nil {
			continue
		}
		if err := fromTag(entry, val.Field(info.Index), joinPath(fieldPath, info.TagName)); err != nil {
			return err
		}
	}
	return nil
}

func mapFromTag(t *tag.Tag, val reflect.Value, fieldPath string) error {
	if t.Type != tag.CompoundType {
		return typeErr(fieldPath, tag.CompoundType, t.Type)
	}
	mt := val.Type()
	if mt.Key().Kind() != reflect.String {
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map key type %s is not string", mt.Key()),
		}
	}
	if val.IsNil() {
		val.Set(reflect.MakeMapWithSize(mt, t.Len()))
	}
	for i, name := range t.Names {
		ev := reflect.New(mt.Elem()).Elem()
		if err := fromTag(t.Values[i], ev, joinPath(fieldPath, name)); err != nil {
			return err
		}
		val.SetMapIndex(reflect.ValueOf(name).Convert(mt.Key()), ev)
	}
	return nil
}

func sliceFromTag(t *tag.Tag, val reflect.Value, fieldPath string) error {
	if t.Type != tag.ListType {
		return typeErr(fieldPath, tag.ListType, t.Type)
	}
	st := val.Type()
	res := reflect.MakeSlice(st, len(t.Values), len(t.Values))
	for i, v := range t.Values {
		if err := fromTag(v, res.Index(i), fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
			return err
		}
	}
	val.Set(res)
	return nil
}

// anyFromTag produces the natural Go value for a tag when the target is
// an empty interface, preserving numeric widths.
func anyFromTag(t *tag.Tag, fieldPath string) (any, error) {
	switch t.Type {
	case tag.ByteType:
		return t.Byte, nil
	case tag.ShortType:
		return t.Short, nil
	case tag.IntType:
		return t.Int, nil
	case tag.LongType:
		return t.Long, nil
	case tag.FloatType:
		return t.Float, nil
	case tag.DoubleType:
		return t.Double, nil
	case tag.StringType:
		return t.String, nil
	case tag.ListType:
		res := make([]any, len(t.Values))
		for i, v := range t.Values {
			e, err := anyFromTag(v, fmt.Sprintf("%s[%d]", fieldPath, i))
			if err != nil {
				return nil, err
			}
			res[i] = e
		}
		return res, nil
	case tag.CompoundType:
		res := make(map[string]any, t.Len())
		for i, name := range t.Names {
			e, err := anyFromTag(t.Values[i], joinPath(fieldPath, name))
			if err != nil {
				return nil, err
			}
			res[name] = e
		}
		return res, nil
	}
	return nil, &UnmarshalError{FieldPath: fieldPath, Message: "unknown tag kind"}
}

func typeErr(fieldPath string, want, got tag.Type) error {
	return &TypeError{
		FieldPath: fieldPath,
		Expected:  want.String(),
		Actual:    got.String(),
	}
}
