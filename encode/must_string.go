package encode

import (
	"bytes"
	"strings"

	"github.com/compound-format/go-compound/tag"
)

func MustString(t *tag.Tag) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf, Compact(true)); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
