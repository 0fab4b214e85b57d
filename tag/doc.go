// Package tag provides the tree representation for compound documents.
//
// # Overview
//
// A compound document is a tree of tagged values. Each value is a Tag, a
// recursive tagged union over a closed set of kinds:
//
//   - Fixed-width numerics: byte, short, int, long, float, double
//   - Strings
//   - Lists: ordered sequences of tags
//   - Compounds: string-keyed collections of tags, preserving insertion order
//
// There is no boolean kind; booleans travel as bytes (0 false, nonzero
// true) via FromBool and AsBool.
//
// # Creating tags
//
//	t := tag.NewCompound()
//	t.Put("health", tag.FromInt(20))
//	t.Put("name", tag.FromString("iris"))
//	t.Put("pos", tag.FromSlice([]*tag.Tag{tag.FromDouble(0.5), tag.FromDouble(64)}))
//
// # Narrowing
//
// The As accessors extract a concrete kind and fail with ErrTypeMismatch
// when the tag holds something else; there is no coercion between kinds,
// not even between numeric widths.
//
// # Identity
//
// Compounds are mutable and shared by pointer: two references to the same
// *Tag observe each other's Put and Delete calls. Clone produces a deep,
// disconnected copy. Tags are not safe for concurrent mutation; callers
// that share a tree across goroutines synchronize externally.
//
// # Interchange
//
// The typed JSON form (ToJSON, FromJSON) round-trips kind and width
// exactly and is the document exchange format used by the cq tool. The
// host engine's binary tag format is out of scope for this library.
package tag
