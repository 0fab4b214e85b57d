package libdiff

import (
	"github.com/compound-format/go-compound/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffList diffs two lists element-wise. Elements are aligned by
// structural hash, so an insertion in the middle does not report every
// following element as changed. Each change entry carries "at", the
// element's index on its own side.
func DiffList(from, to *tag.Tag, df DiffFunc) *tag.Tag {
	hashMap := map[uint64]rune{}
	fromRunes := mapElemsTo(hashMap, from)
	toRunes := mapElemsTo(hashMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	var entries []*tag.Tag
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				entries = append(entries, listEntry(fi, from.Values[fi], nil))
				fi++
			}
		case diffpatch.DiffEqual:
			// equal hashes should mean structurally equal elements;
			// recurse anyway so a hash collision cannot hide a change
			for range diff.Text {
				if d := df(from.Values[fi], to.Values[ti]); d != nil {
					entries = append(entries, listEntry(fi, from.Values[fi], to.Values[ti]))
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				entries = append(entries, listEntry(ti, nil, to.Values[ti]))
				ti++
			}
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return tag.FromSlice(entries)
}

func listEntry(at int, from, to *tag.Tag) *tag.Tag {
	res := MakeDiff(from, to)
	res.Put("at", tag.FromInt(int32(at)))
	return res
}

func mapElemsTo(m map[uint64]rune, t *tag.Tag) []rune {
	rs := make([]rune, len(t.Values))
	for i, v := range t.Values {
		h := v.Hash()
		r, ok := m[h]
		if !ok {
			r = rune(len(m))
			m[h] = r
		}
		rs[i] = r
	}
	return rs
}
