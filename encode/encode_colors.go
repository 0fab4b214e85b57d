package encode

import (
	"github.com/compound-format/go-compound/tag"

	"github.com/fatih/color"
)

type Colorable struct {
	Type tag.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range tag.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(128, 128, 128).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	numeric := color.RGB(128, 216, 236).SprintfFunc()
	for _, t := range []tag.Type{tag.ByteType, tag.ShortType, tag.IntType, tag.LongType, tag.FloatType, tag.DoubleType} {
		able.Type = t
		colors.Map[able] = numeric
	}

	able.Type = tag.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Type: tag.CompoundType, Attr: FieldColor}
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	return colors
}

func colorDefault(f string, args ...any) string {
	return color.WhiteString(f, args...)
}

// paint applies the color for able to s. A nil receiver paints nothing,
// so uncolored encoding needs no special casing.
func (c *Colors) paint(able Colorable, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Map[able]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}
