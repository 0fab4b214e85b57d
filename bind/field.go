package bind

import (
	"errors"
	"fmt"

	"github.com/compound-format/go-compound/debug"
)

// ErrMissingValue is returned by Read when the compound has no entry
// under the field's key and the field has no cached value to fall back
// on. Constructing the field with a default avoids it.
var ErrMissingValue = errors.New("missing value")

// Field binds a typed value to a key inside a compound reached through a
// node reference. Key, reference and codec are fixed at construction;
// only the cache mutates.
type Field[T any] struct {
	key   string
	ref   Ref
	codec Codec[T]
	cache *T
}

// Key returns the key the field reads and writes under.
func (f *Field[T]) Key() string {
	return f.key
}

// Read returns the field's current value.
//
// The compound is the source of truth: when it has an entry under the
// key, the entry is decoded, cached, and returned. When it does not,
// the last known value is returned instead — and, as a documented side
// effect, written back into the compound, so a reference redirected to
// a fresh compound repopulates it on first read. With no entry and no
// prior value, Read fails with ErrMissingValue; a decode of the wrong
// kind fails with tag.ErrTypeMismatch.
func (f *Field[T]) Read() (T, error) {
	node := f.ref()
	if stored := node.Get(f.key); stored != nil {
		v, err := f.codec.Decode(stored)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("read %q: %w", f.key, err)
		}
		f.cache = &v
		return v, nil
	}
	if f.cache != nil {
		if debug.Bind() {
			debug.Logf("bind: re-seeding %q from cache\n", f.key)
		}
		node.Put(f.key, f.codec.Encode(*f.cache))
		return *f.cache, nil
	}
	var zero T
	return zero, fmt.Errorf("read %q: %w", f.key, ErrMissingValue)
}

// MustRead is Read, panicking on error.
func (f *Field[T]) MustRead() T {
	v, err := f.Read()
	if err != nil {
		panic(err)
	}
	return v
}

// Write encodes v and stores it under the field's key in the current
// compound, then caches v. A read against the same compound afterwards
// observes v.
func (f *Field[T]) Write(v T) {
	f.ref().Put(f.key, f.codec.Encode(v))
	f.cache = &v
}
