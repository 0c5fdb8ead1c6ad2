package encode

import (
	"regexp"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

var yamlBareKey = regexp.MustCompile(`^[\w-]+$`)

// encodeYAML writes block mappings and sequences. A sequence under a key
// sits at the key's own indentation; mapping values go one level deeper.
func encodeYAML(node *ir.Node, es *EncState) (string, error) {
	var b strings.Builder
	var err error
	switch {
	case node.Type == ir.ObjectType && node.Len() > 0:
		err = yamlMapping(&b, node, 0, es)
	case node.Type == ir.ArrayType && node.Len() > 0:
		err = yamlSequence(&b, node, 0, es)
	case node.Type.IsLeaf():
		var s string
		s, err = literal(node)
		b.WriteString(es.color(node.Type, ValueColor, s))
	default:
		b.WriteString(es.color(node.Type, ValueColor, yamlEmpty(node)))
	}
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func yamlMapping(b *strings.Builder, node *ir.Node, depth int, es *EncState) error {
	for i, f := range node.Fields {
		v := node.Values[i]
		b.WriteString(es.pad(depth))
		b.WriteString(es.color(ir.ObjectType, FieldColor, yamlKey(f.String)))
		b.WriteString(es.color(ir.ObjectType, SepColor, ":"))
		switch {
		case v.Type == ir.ObjectType && v.Len() > 0:
			b.WriteString("\n")
			if err := yamlMapping(b, v, depth+1, es); err != nil {
				return err
			}
		case v.Type == ir.ArrayType && v.Len() > 0:
			b.WriteString("\n")
			if err := yamlSequence(b, v, depth, es); err != nil {
				return err
			}
		default:
			s, err := yamlScalar(v)
			if err != nil {
				return err
			}
			b.WriteString(" " + es.color(v.Type, ValueColor, s) + "\n")
		}
	}
	return nil
}

func yamlSequence(b *strings.Builder, node *ir.Node, depth int, es *EncState) error {
	for _, v := range node.Values {
		b.WriteString(es.pad(depth))
		b.WriteString(es.color(ir.ArrayType, SepColor, "-"))
		switch {
		case v.Type == ir.ObjectType && v.Len() > 0:
			b.WriteString("\n")
			if err := yamlMapping(b, v, depth+1, es); err != nil {
				return err
			}
		case v.Type == ir.ArrayType && v.Len() > 0:
			b.WriteString("\n")
			if err := yamlSequence(b, v, depth+1, es); err != nil {
				return err
			}
		default:
			s, err := yamlScalar(v)
			if err != nil {
				return err
			}
			b.WriteString(" " + es.color(v.Type, ValueColor, s) + "\n")
		}
	}
	return nil
}

func yamlKey(k string) string {
	if yamlBareKey.MatchString(k) {
		return k
	}
	return jsonQuote(k)
}

func yamlEmpty(n *ir.Node) string {
	if n.Type == ir.ArrayType {
		return "[]"
	}
	return "{}"
}

// yamlScalar writes strings bare unless reading them back would give a
// different value, in which case they are double quoted.
func yamlScalar(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.StringType:
		if yamlNeedsQuotes(n.String) {
			return jsonQuote(n.String), nil
		}
		return n.String, nil
	case ir.ObjectType, ir.ArrayType:
		return yamlEmpty(n), nil
	default:
		return literal(n)
	}
}

func yamlNeedsQuotes(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return true
	}
	if ir.IsNumeric(s) {
		return true
	}
	switch strings.ToLower(s) {
	case "true", "false", "null", "~":
		return true
	}
	switch s[0] {
	case '"', '\'', '#', '{', '[', '&', '*', '!', '|', '>', '%', '@', '`':
		return true
	}
	if s == "-" || strings.HasPrefix(s, "- ") || strings.HasSuffix(s, ":") {
		return true
	}
	return strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.ContainsAny(s, "\n\r\t")
}
