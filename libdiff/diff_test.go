package libdiff

import (
	"testing"

	"github.com/compound-format/go-compound/tag"
)

func TestDiffEqual(t *testing.T) {
	a := tag.FromMap(map[string]*tag.Tag{
		"x": tag.FromInt(1),
		"l": tag.FromSlice([]*tag.Tag{tag.FromString("a")}),
	})
	if d := Diff(a, a.Clone()); d != nil {
		t.Errorf("Diff of equal docs = %+v, want nil", d)
	}
}

func TestDiffLeafChange(t *testing.T) {
	d := Diff(tag.FromInt(1), tag.FromInt(2))
	if d == nil {
		t.Fatal("Diff = nil for changed leaf")
	}
	if got := d.Get("from"); got == nil || got.Int != 1 {
		t.Errorf("from = %+v, want 1", got)
	}
	if got := d.Get("to"); got == nil || got.Int != 2 {
		t.Errorf("to = %+v, want 2", got)
	}
}

func TestDiffKindChange(t *testing.T) {
	d := Diff(tag.FromInt(1), tag.FromLong(1))
	if d == nil {
		t.Fatal("Diff = nil across kinds")
	}
	if d.Get("from").Type != tag.IntType || d.Get("to").Type != tag.LongType {
		t.Errorf("kind change diff = %+v", d)
	}
}

func TestDiffCompoundKeys(t *testing.T) {
	from := tag.FromMap(map[string]*tag.Tag{
		"keep":   tag.FromInt(1),
		"drop":   tag.FromInt(2),
		"change": tag.FromString("a"),
	})
	to := tag.FromMap(map[string]*tag.Tag{
		"keep":   tag.FromInt(1),
		"add":    tag.FromInt(3),
		"change": tag.FromString("b"),
	})
	d := Diff(from, to)
	if d == nil {
		t.Fatal("Diff = nil")
	}
	if d.Has("keep") {
		t.Error("unchanged key reported")
	}
	if e := d.Get("drop"); e == nil || e.Has("to") || e.Get("from").Int != 2 {
		t.Errorf("drop entry = %+v", e)
	}
	if e := d.Get("add"); e == nil || e.Has("from") || e.Get("to").Int != 3 {
		t.Errorf("add entry = %+v", e)
	}
	if e := d.Get("change"); e == nil || e.Get("from").String != "a" || e.Get("to").String != "b" {
		t.Errorf("change entry = %+v", e)
	}
}

func TestDiffNestedCompound(t *testing.T) {
	from := tag.FromMap(map[string]*tag.Tag{
		"sub": tag.FromMap(map[string]*tag.Tag{"v": tag.FromInt(1), "w": tag.FromInt(5)}),
	})
	to := tag.FromMap(map[string]*tag.Tag{
		"sub": tag.FromMap(map[string]*tag.Tag{"v": tag.FromInt(2), "w": tag.FromInt(5)}),
	})
	d := Diff(from, to)
	sub := d.Get("sub")
	if sub == nil {
		t.Fatal("no nested entry")
	}
	if sub.Has("w") {
		t.Error("unchanged nested key reported")
	}
	if e := sub.Get("v"); e == nil || e.Get("from").Int != 1 || e.Get("to").Int != 2 {
		t.Errorf("nested change = %+v", e)
	}
}

func TestDiffListInsert(t *testing.T) {
	from := tag.FromSlice([]*tag.Tag{tag.FromString("a"), tag.FromString("c")})
	to := tag.FromSlice([]*tag.Tag{tag.FromString("a"), tag.FromString("b"), tag.FromString("c")})
	d := Diff(from, to)
	if d == nil || d.Type != tag.ListType {
		t.Fatalf("Diff = %+v, want list", d)
	}
	if d.Len() != 1 {
		t.Fatalf("diff entries = %d, want 1", d.Len())
	}
	e := d.Values[0]
	if e.Has("from") {
		t.Error("insertion reported a from side")
	}
	if got := e.Get("to"); got == nil || got.String != "b" {
		t.Errorf("to = %+v, want b", got)
	}
	if got := e.Get("at"); got == nil || got.Int != 1 {
		t.Errorf("at = %+v, want 1", got)
	}
}

func TestDiffListDelete(t *testing.T) {
	from := tag.FromSlice([]*tag.Tag{tag.FromInt(1), tag.FromInt(2), tag.FromInt(3)})
	to := tag.FromSlice([]*tag.Tag{tag.FromInt(1), tag.FromInt(3)})
	d := Diff(from, to)
	if d == nil || d.Len() != 1 {
		t.Fatalf("Diff = %+v, want one entry", d)
	}
	e := d.Values[0]
	if got := e.Get("from"); got == nil || got.Int != 2 {
		t.Errorf("from = %+v, want 2", got)
	}
	if got := e.Get("at"); got == nil || got.Int != 1 {
		t.Errorf("at = %+v, want 1", got)
	}
}
