package gomap

import (
	"reflect"
	"strings"
)

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Name is the struct field name
	Name string

	// TagName is the compound key, defaulting to the field name
	TagName string

	// Index is the field's index within the struct
	Index int

	// Omit drops the field from both directions
	Omit bool

	// OmitEmpty drops zero values on marshal
	OmitEmpty bool
}

// structFields extracts conversion metadata for the exported fields of a
// struct type. Unexported and `compound:"-"` fields are omitted.
func structFields(t reflect.Type) []FieldInfo {
	fields := make([]FieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		info := FieldInfo{
			Name:    sf.Name,
			TagName: sf.Name,
			Index:   i,
		}
		if tagVal, ok := sf.Tag.Lookup("compound"); ok {
			parts := strings.Split(tagVal, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				info.TagName = parts[0]
			}
			for _, p := range parts[1:] {
				switch p {
				case "omit":
					info.Omit = true
				case "omitempty":
					info.OmitEmpty = true
				}
			}
		}
		if info.Omit {
			continue
		}
		fields = append(fields, info)
	}
	return fields
}
