package translator

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Ssajaia/universal-data-translator/encode"
	"github.com/Ssajaia/universal-data-translator/format"
	"github.com/Ssajaia/universal-data-translator/parse"
)

// reprint formats text in its own format. JSON goes through the JSON
// parser and encoder, XML is canonicalised token by token, YAML and TOML
// are returned as they are.
func (c *Converter) reprint(text string, f format.Format) (string, error) {
	switch f {
	case format.JSONFormat:
		node, err := parse.JSON([]byte(text))
		if err != nil {
			return "", err
		}
		return c.encode(node, f)
	case format.XMLFormat:
		return CanonicalXML(text)
	default:
		return text, nil
	}
}

var xmlAttr = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;",
	"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")

// CanonicalXML rewrites an XML document with normalised markup: entities
// re-escaped, attributes double quoted, elements without content self
// closed. Prefixes, whitespace, comments and processing instructions are
// kept.
func CanonicalXML(text string) (string, error) {
	if err := parse.WellFormed([]byte(text)); err != nil {
		return "", err
	}
	dec := xml.NewDecoder(strings.NewReader(text))
	var (
		b       strings.Builder
		pending *xml.StartElement
	)
	open := func(close string) {
		if pending == nil {
			return
		}
		b.WriteString("<" + xmlName(pending.Name))
		for _, a := range pending.Attr {
			fmt.Fprintf(&b, ` %s="%s"`, xmlName(a.Name), xmlAttr.Replace(a.Value))
		}
		b.WriteString(close)
		pending = nil
	}
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", parse.ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			open(">")
			se := t.Copy()
			pending = &se
		case xml.EndElement:
			if pending != nil {
				open("/>")
				continue
			}
			b.WriteString("</" + xmlName(t.Name) + ">")
		case xml.CharData:
			open(">")
			b.WriteString(encode.EscapeXMLText(string(t)))
		case xml.Comment:
			open(">")
			b.WriteString("<!--" + string(t) + "-->")
		case xml.ProcInst:
			open(">")
			if len(t.Inst) == 0 {
				b.WriteString("<?" + t.Target + "?>")
			} else {
				b.WriteString("<?" + t.Target + " " + string(t.Inst) + "?>")
			}
		case xml.Directive:
			open(">")
			b.WriteString("<!" + string(t) + ">")
		}
	}
	return b.String(), nil
}

func xmlName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
