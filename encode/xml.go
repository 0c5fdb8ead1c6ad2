package encode

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

const xmlDecl = `<?xml version="1.0" encoding="UTF-8"?>`

var (
	xmlName    = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_.:-]*$`)
	xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// EscapeXMLText escapes the characters that may not appear in XML
// character data.
func EscapeXMLText(s string) string {
	return xmlEscaper.Replace(s)
}

// encodeXML writes the whole value inside one root element, without
// indentation. Attributes are not written.
func encodeXML(node *ir.Node, es *EncState) (string, error) {
	var b strings.Builder
	b.WriteString(es.color(ir.StringType, CommentColor, xmlDecl))
	b.WriteString("\n")
	if err := xmlElement(&b, node, es.xmlRoot, es); err != nil {
		return "", err
	}
	return b.String(), nil
}

func xmlElement(b *strings.Builder, node *ir.Node, name string, es *EncState) error {
	if !xmlName.MatchString(name) {
		return fmt.Errorf("%w: %q is not a valid XML element name", ErrEncoding, name)
	}
	b.WriteString(es.color(node.Type, TagColor, "<"+name+">"))
	switch node.Type {
	case ir.ObjectType:
		for i, f := range node.Fields {
			if err := xmlEntry(b, f.String, node.Values[i], es); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for _, v := range node.Values {
			if err := xmlElement(b, v, "item", es); err != nil {
				return err
			}
		}
	default:
		s, err := text(node)
		if err != nil {
			return err
		}
		b.WriteString(es.color(node.Type, ValueColor, EscapeXMLText(s)))
	}
	b.WriteString(es.color(node.Type, TagColor, "</"+name+">"))
	return nil
}

func xmlEntry(b *strings.Builder, key string, v *ir.Node, es *EncState) error {
	switch {
	case key == ir.AttributesKey:
		return nil
	case key == ir.TextKey:
		if !v.Type.IsLeaf() {
			return fmt.Errorf("%w: %s must be a scalar, got %s", ErrEncoding, ir.TextKey, v.Type)
		}
		s, err := text(v)
		if err != nil {
			return err
		}
		b.WriteString(es.color(v.Type, ValueColor, EscapeXMLText(s)))
		return nil
	case v.Type == ir.ArrayType:
		for _, item := range v.Values {
			if err := xmlElement(b, item, key, es); err != nil {
				return err
			}
		}
		return nil
	default:
		return xmlElement(b, v, key, es)
	}
}
