// Package bind attaches named, typed fields to entries of compound tags.
//
// A Field[T] couples a key, a node reference, and a codec. Reads decode
// the entry stored under the key in whatever compound the reference
// currently yields; writes encode and store through to it. Each field
// keeps the last value it read or wrote, and a read that finds no entry
// falls back to that cached value, writing it back into the compound as a
// side effect. This self-healing read is deliberate: it keeps a bound
// name stable when a live reference is redirected to a freshly created,
// still-empty compound.
//
//	var root = tag.NewCompound()
//	health := bind.Int(bind.At(root), bind.WithDefault(int32(20)))("health")
//
//	health.Write(15)
//	hp, err := health.Read() // 15, and root now stores 15 under "health"
//
// References come in two flavors. A live reference re-resolves on every
// call, so redirecting the underlying variable redirects all fields built
// on it; Freeze captures the compound once and pins it. Compound fields
// yield *tag.Tag values that can themselves serve as roots for further
// bindings, to any depth.
//
// The package performs no locking: fields over a shared compound follow
// the same single-writer discipline as the compound itself.
package bind
