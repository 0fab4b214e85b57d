// Package encode renders tags in a human-oriented text form.
//
// The form is write-only: documents round-trip through the typed JSON
// encoding in package tag, not through this renderer. Numeric kinds carry
// width suffixes (20b, 7s, 9L, 1.5f, 2.5d) so the rendering is
// unambiguous about kind even though it is not parsed back.
package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/compound-format/go-compound/tag"
)

// Encode writes the text form of t to w.
func Encode(t *tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	es.encode(t, 0)
	_, err := io.WriteString(w, es.sb.String())
	return err
}

type EncState struct {
	sb      strings.Builder
	compact bool
	indent  string
	colors  *Colors
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: "  "}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) encode(t *tag.Tag, depth int) {
	switch t.Type {
	case tag.ByteType:
		es.value(t.Type, strconv.FormatInt(int64(t.Byte), 10)+"b")
	case tag.ShortType:
		es.value(t.Type, strconv.FormatInt(int64(t.Short), 10)+"s")
	case tag.IntType:
		es.value(t.Type, strconv.FormatInt(int64(t.Int), 10))
	case tag.LongType:
		es.value(t.Type, strconv.FormatInt(t.Long, 10)+"L")
	case tag.FloatType:
		es.value(t.Type, strconv.FormatFloat(float64(t.Float), 'g', -1, 32)+"f")
	case tag.DoubleType:
		es.value(t.Type, strconv.FormatFloat(t.Double, 'g', -1, 64)+"d")
	case tag.StringType:
		es.value(t.Type, strconv.Quote(t.String))
	case tag.ListType:
		es.encodeList(t, depth)
	case tag.CompoundType:
		es.encodeCompound(t, depth)
	}
}

func (es *EncState) encodeList(t *tag.Tag, depth int) {
	if len(t.Values) == 0 {
		es.sep(tag.ListType, "[]")
		return
	}
	es.sep(tag.ListType, "[")
	for i, v := range t.Values {
		if i > 0 {
			es.sep(tag.ListType, ",")
			if es.compact {
				es.sb.WriteString(" ")
			}
		}
		es.newlineIndent(depth + 1)
		es.encode(v, depth+1)
	}
	es.newlineIndent(depth)
	es.sep(tag.ListType, "]")
}

func (es *EncState) encodeCompound(t *tag.Tag, depth int) {
	if t.Len() == 0 {
		es.sep(tag.CompoundType, "{}")
		return
	}
	es.sep(tag.CompoundType, "{")
	for i, name := range t.Names {
		if i > 0 {
			es.sep(tag.CompoundType, ",")
			if es.compact {
				es.sb.WriteString(" ")
			}
		}
		es.newlineIndent(depth + 1)
		es.field(quoteName(name))
		es.sep(tag.CompoundType, ": ")
		es.encode(t.Values[i], depth+1)
	}
	es.newlineIndent(depth)
	es.sep(tag.CompoundType, "}")
}

func (es *EncState) newlineIndent(depth int) {
	if es.compact {
		return
	}
	es.sb.WriteString("\n")
	for range depth {
		es.sb.WriteString(es.indent)
	}
}

func (es *EncState) value(t tag.Type, s string) {
	es.sb.WriteString(es.colors.paint(Colorable{Type: t, Attr: ValueColor}, s))
}

func (es *EncState) field(s string) {
	es.sb.WriteString(es.colors.paint(Colorable{Type: tag.CompoundType, Attr: FieldColor}, s))
}

func (es *EncState) sep(t tag.Type, s string) {
	es.sb.WriteString(es.colors.paint(Colorable{Type: t, Attr: SepColor}, s))
}

func quoteName(name string) string {
	if name == "" {
		return `""`
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return strconv.Quote(name)
		}
	}
	return name
}
