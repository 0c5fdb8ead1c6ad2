package encode

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

// literal is the JSON text of a scalar node.
func literal(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		if n.Bool {
			return "true", nil
		}
		return "false", nil
	case ir.NumberType:
		if !n.Finite() {
			return "null", nil
		}
		return ir.FormatNumber(n.Float64), nil
	case ir.StringType:
		return jsonQuote(n.String), nil
	default:
		return "", fmt.Errorf("%w: %s is not a scalar", ErrEncoding, n.Type)
	}
}

// text is the unquoted text of a scalar node.
func text(n *ir.Node) (string, error) {
	if n.Type == ir.StringType {
		return n.String, nil
	}
	return literal(n)
}

func jsonQuote(s string) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(b.String(), "\n")
}
