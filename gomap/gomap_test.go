package gomap

import (
	"errors"
	"testing"

	"github.com/compound-format/go-compound/tag"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID    string `compound:"id"`
	Count int8   `compound:"count"`
}

type player struct {
	Name      string  `compound:"name"`
	Health    int32   `compound:"health"`
	XP        int64   `compound:"xp"`
	Speed     float32 `compound:"speed"`
	Ghost     bool    `compound:"ghost,omitempty"`
	Inventory []item  `compound:"inventory"`
	Secret    string  `compound:"-"`
	internal  int
}

func TestStructRoundTrip(t *testing.T) {
	p := player{
		Name:   "iris",
		Health: 20,
		XP:     1234,
		Speed:  1.5,
		Inventory: []item{
			{ID: "sword", Count: 1},
			{ID: "apple", Count: 12},
		},
		Secret:   "hidden",
		internal: 9,
	}
	tg, err := ToTag(p)
	if err != nil {
		t.Fatalf("ToTag() error: %v", err)
	}
	if tg.Type != tag.CompoundType {
		t.Fatalf("ToTag() kind = %s, want Compound", tg.Type)
	}
	if tg.Has("Secret") || tg.Has("-") || tg.Has("internal") {
		t.Error("skipped fields were marshaled")
	}
	if got := tg.Get("health"); got == nil || got.Type != tag.IntType || got.Int != 20 {
		t.Errorf("health = %+v, want Int 20", got)
	}
	if got := tg.Get("count"); got != nil {
		t.Error("nested field leaked to top level")
	}
	if got, err := tag.GetPath(tg, "inventory[1].count"); err != nil || got.Type != tag.ByteType || got.Byte != 12 {
		t.Errorf("inventory[1].count = %+v, %v, want Byte 12", got, err)
	}
	// ghost is zero and omitempty
	if tg.Has("ghost") {
		t.Error("omitempty zero field was marshaled")
	}

	var back player
	if err := FromTag(tg, &back); err != nil {
		t.Fatalf("FromTag() error: %v", err)
	}
	want := p
	want.Secret = ""
	want.internal = 0
	if diff := cmp.Diff(want, back, cmp.AllowUnexported(player{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMapRoundTrip(t *testing.T) {
	m := map[string]int32{"a": 1, "b": 2}
	tg, err := ToTag(m)
	if err != nil {
		t.Fatal(err)
	}
	if got := tg.Keys(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v, want sorted [a b]", got)
	}
	var back map[string]int32
	if err := FromTag(tg, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, back); diff != "" {
		t.Errorf("map round trip (-want +got):\n%s", diff)
	}
}

func TestWidthMapping(t *testing.T) {
	type widths struct {
		B int8
		S int16
		I int32
		L int64
		F float32
		D float64
	}
	tg, err := ToTag(widths{})
	if err != nil {
		t.Fatal(err)
	}
	wants := map[string]tag.Type{
		"B": tag.ByteType,
		"S": tag.ShortType,
		"I": tag.IntType,
		"L": tag.LongType,
		"F": tag.FloatType,
		"D": tag.DoubleType,
	}
	for name, want := range wants {
		if got := tg.Get(name); got == nil || got.Type != want {
			t.Errorf("%s kind = %v, want %s", name, got, want)
		}
	}
}

func TestKindMismatch(t *testing.T) {
	tg := tag.FromMap(map[string]*tag.Tag{"health": tag.FromString("full")})
	var p struct {
		Health int32 `compound:"health"`
	}
	err := FromTag(tg, &p)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("error = %v, want TypeError", err)
	}
	if te.Expected != "Int" || te.Actual != "String" {
		t.Errorf("TypeError = %+v", te)
	}
	if te.FieldPath != "health" {
		t.Errorf("FieldPath = %q, want health", te.FieldPath)
	}
}

func TestAbsentKeyLeavesValue(t *testing.T) {
	var p struct {
		Name string `compound:"name"`
	}
	p.Name = "pre"
	if err := FromTag(tag.NewCompound(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Name != "pre" {
		t.Errorf("Name = %q, want untouched pre", p.Name)
	}
}

func TestPointerFields(t *testing.T) {
	type rec struct {
		Next *rec  `compound:"next,omitempty"`
		V    int32 `compound:"v"`
	}
	r := rec{V: 1, Next: &rec{V: 2}}
	tg, err := ToTag(r)
	if err != nil {
		t.Fatal(err)
	}
	var back rec
	if err := FromTag(tg, &back); err != nil {
		t.Fatal(err)
	}
	if back.Next == nil || back.Next.V != 2 || back.Next.Next != nil {
		t.Errorf("pointer round trip = %+v", back)
	}
}

type wrapped struct {
	val string
}

func (w wrapped) MarshalTag() (*tag.Tag, error) {
	return tag.FromString("wrapped:" + w.val), nil
}

func (w *wrapped) UnmarshalTag(t *tag.Tag) error {
	s, err := t.AsString()
	if err != nil {
		return err
	}
	w.val = s[len("wrapped:"):]
	return nil
}

func TestCustomMarshaler(t *testing.T) {
	tg, err := ToTag(wrapped{val: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if tg.Type != tag.StringType || tg.String != "wrapped:x" {
		t.Errorf("MarshalTag result = %+v", tg)
	}
	var back wrapped
	if err := FromTag(tg, &back); err != nil {
		t.Fatal(err)
	}
	if back.val != "x" {
		t.Errorf("UnmarshalTag val = %q, want x", back.val)
	}
}

func TestForCodec(t *testing.T) {
	codec := For[item]()
	tg, err := codec.Marshal(item{ID: "sword", Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	got, err := codec.Unmarshal(tg)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "sword" || got.Count != 1 {
		t.Errorf("Unmarshal = %+v", got)
	}
}

func TestRawTagPassthrough(t *testing.T) {
	type holder struct {
		Extra *tag.Tag `compound:"extra"`
	}
	extra := tag.FromMap(map[string]*tag.Tag{"k": tag.FromInt(1)})
	tg, err := ToTag(holder{Extra: extra})
	if err != nil {
		t.Fatal(err)
	}
	var back holder
	if err := FromTag(tg, &back); err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(back.Extra, extra) {
		t.Errorf("raw tag round trip = %+v", back.Extra)
	}
	// passthrough clones, identity is not shared
	back.Extra.Put("k", tag.FromInt(2))
	if extra.Get("k").Int != 1 {
		t.Error("raw tag passthrough shared identity")
	}
}
