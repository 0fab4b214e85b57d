package compound

import (
	"io"

	"github.com/compound-format/go-compound/tag"
)

// ReadDocument reads a document from r: the typed JSON form when wire
// is set, otherwise the plain form with kind inference.
func ReadDocument(r io.Reader, wire bool) (*tag.Tag, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if wire {
		return tag.FromJSON(d)
	}
	return UnmarshalPlain(d)
}

// WriteDocument writes t to w in the form selected by wire, with a
// trailing newline.
func WriteDocument(w io.Writer, t *tag.Tag, wire bool) error {
	var d []byte
	var err error
	if wire {
		d, err = tag.ToJSON(t)
	} else {
		d, err = MarshalPlain(t)
	}
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
