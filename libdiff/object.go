package libdiff

import (
	"github.com/compound-format/go-compound/debug"
	"github.com/compound-format/go-compound/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffFunc computes the diff of two tags, nil meaning no change. It is
// threaded through the recursive diff entry points so callers can
// intercept recursion.
type DiffFunc func(from, to *tag.Tag) *tag.Tag

// Diff returns a tag describing the change from from to to, or nil if
// the two are equal. See the package comment for the diff shape.
func Diff(from, to *tag.Tag) *tag.Tag {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case tag.CompoundType:
		return DiffCompound(from, to, Diff)
	case tag.ListType:
		return DiffList(from, to, Diff)
	default:
		if tag.Equal(from, to) {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds a leaf diff entry. A nil from marks an insertion, a
// nil to a deletion.
func MakeDiff(from, to *tag.Tag) *tag.Tag {
	res := tag.NewCompound()
	if from != nil {
		res.Put("from", from.Clone())
	}
	if to != nil {
		res.Put("to", to.Clone())
	}
	return res
}

// DiffCompound diffs two compounds key-wise: align the key sequences
// with diffmatchpatch, recurse per df on keys present on both sides.
func DiffCompound(from, to *tag.Tag, df DiffFunc) *tag.Tag {
	keyMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapKeysTo(keyMap, runeMap, from)
	toRunes := mapKeysTo(keyMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	if debug.Diff() {
		debug.Logf("libdiff: compound key diff has %d segments\n", len(diffs))
	}
	resMap := map[string]*tag.Tag{}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(from.Values[fi], nil)
				fi++
			}
		case diffpatch.DiffEqual:
			for _, r := range diff.Text {
				fRes := df(from.Values[fi], to.Values[ti])
				if fRes != nil {
					resMap[runeMap[r]] = fRes
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for _, r := range diff.Text {
				resMap[runeMap[r]] = MakeDiff(nil, to.Values[ti])
				ti++
			}
		}
	}
	if len(resMap) == 0 {
		return nil
	}
	return tag.FromMap(resMap)
}

func mapKeysTo(m map[string]rune, im map[rune]string, t *tag.Tag) []rune {
	rs := make([]rune, len(t.Names))
	for i, name := range t.Names {
		r, ok := m[name]
		if !ok {
			r = rune(len(m))
			m[name] = r
			im[r] = name
		}
		rs[i] = r
	}
	return rs
}
