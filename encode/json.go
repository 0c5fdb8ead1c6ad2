package encode

import (
	"fmt"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"

	"github.com/tidwall/pretty"
)

// Pretty reindents a JSON document. Arrays are always expanded one
// element per line.
func Pretty(d []byte, indent int) []byte {
	return pretty.PrettyOptions(d, &pretty.Options{
		Indent: strings.Repeat(" ", indent),
		Width:  0,
	})
}

func encodeJSON(node *ir.Node, es *EncState) (string, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	out := Pretty(d, es.indent)
	if es.Color != nil {
		out = pretty.Color(out, nil)
	}
	return string(out), nil
}
