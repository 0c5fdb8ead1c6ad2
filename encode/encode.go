package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent  int
	format  format.Format
	xmlRoot string

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState() *EncState {
	return &EncState{
		indent:  2,
		format:  format.JSONFormat,
		xmlRoot: "data",
	}
}

// Encode writes node to w in the format selected by opts (JSON by
// default). Nothing is written when an error is returned.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState()
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrEncoding, es.indent)
	}
	var (
		out string
		err error
	)
	switch es.format {
	case format.JSONFormat:
		out, err = encodeJSON(node, es)
	case format.YAMLFormat:
		out, err = encodeYAML(node, es)
	case format.XMLFormat:
		out, err = encodeXML(node, es)
	case format.TOMLFormat:
		out, err = encodeTOML(node, es)
	default:
		return fmt.Errorf("%w: %w: cannot encode %s", ErrEncoding, format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	return writeString(w, strings.TrimRight(out, "\n")+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", es.indent*depth)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}
