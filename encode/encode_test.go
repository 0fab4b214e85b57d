package encode

import (
	"bytes"
	"testing"

	"github.com/compound-format/go-compound/tag"
)

func sample() *tag.Tag {
	c := tag.NewCompound()
	c.Put("health", tag.FromInt(20))
	c.Put("xp", tag.FromLong(1234))
	c.Put("speed", tag.FromFloat(1.5))
	c.Put("name", tag.FromString("iris"))
	c.Put("tags", tag.FromSlice([]*tag.Tag{tag.FromByte(1), tag.FromByte(0)}))
	return c
}

func TestEncodeCompact(t *testing.T) {
	got := MustString(sample())
	want := `{health: 20, xp: 1234L, speed: 1.5f, name: "iris", tags: [1b, 0b]}`
	if got != want {
		t.Errorf("compact encode:\n got %s\nwant %s", got, want)
	}
}

func TestEncodePretty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	c := tag.NewCompound()
	c.Put("a", tag.FromInt(1))
	c.Put("b", tag.FromSlice([]*tag.Tag{tag.FromDouble(2)}))
	if err := Encode(c, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  a: 1,
  b: [
    2d
  ]
}`
	if buf.String() != want {
		t.Errorf("pretty encode:\n got %q\nwant %q", buf.String(), want)
	}
}

func TestEncodeQuotedKeys(t *testing.T) {
	c := tag.NewCompound()
	c.Put("has space", tag.FromInt(1))
	c.Put("plain_key-2", tag.FromInt(2))
	got := MustString(c)
	want := `{"has space": 1, plain_key-2: 2}`
	if got != want {
		t.Errorf("encode = %s, want %s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := MustString(tag.NewCompound()); got != "{}" {
		t.Errorf("empty compound = %s", got)
	}
	if got := MustString(tag.FromSlice(nil)); got != "[]" {
		t.Errorf("empty list = %s", got)
	}
}
