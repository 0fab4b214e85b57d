// Package gomap converts between Go values and compound tags.
//
// Conversion is reflection based and needs no setup:
//
//	type Player struct {
//		Name   string `compound:"name"`
//		Health int32  `compound:"health"`
//		Ghost  bool   `compound:"ghost,omitempty"`
//	}
//
//	t, err := gomap.ToTag(Player{Name: "iris", Health: 20})
//	var p Player
//	err = gomap.FromTag(t, &p)
//
// Width is preserved: int8 maps to the byte kind, int16 to short, int32
// to int, int64 and int to long, float32 to float, float64 to double.
// Booleans map to bytes. Structs and string-keyed maps map to compounds,
// slices and arrays to lists. Only exported struct fields are processed;
// the `compound` tag renames a field, "-" skips it, and ",omitempty"
// drops zero values on marshal.
//
// Types take over their own conversion by implementing Marshaler or
// Unmarshaler.
//
// For builds a typed codec around ToTag/FromTag for use as a
// bidirectional converter handle:
//
//	codec := gomap.For[Player]()
//	t, err := codec.Marshal(p)
//	p2, err := codec.Unmarshal(t)
package gomap
