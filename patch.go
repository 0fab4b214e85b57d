package compound

import (
	"github.com/compound-format/go-compound/debug"
	"github.com/compound-format/go-compound/tag"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// Patch applies an RFC 6902 JSON patch to a document by round-tripping
// it through the plain JSON form. The input document is not modified.
//
// TODO apply ops natively on *tag.Tag to preserve numeric widths; the
// plain-form round trip re-infers every integral kind as long.
func Patch(doc *tag.Tag, patchJSON []byte) (*tag.Tag, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	d, err := MarshalPlain(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("compound: patching %d ops over %d bytes\n", len(ops), len(d))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return UnmarshalPlain(out)
}
