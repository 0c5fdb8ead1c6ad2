package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Ssajaia/universal-data-translator/ir"
)

// WellFormed checks that d is a single well-formed XML document: balanced
// tags, valid entities, exactly one root element and no text outside it.
func WellFormed(d []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(d))
	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return fmt.Errorf("%w: line %d: more than one root element", ErrParse, line(dec))
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) != 0 {
				return fmt.Errorf("%w: line %d: text outside the root element", ErrParse, line(dec))
			}
		}
	}
	if roots == 0 {
		return fmt.Errorf("%w: no root element", ErrParse)
	}
	return nil
}

func line(dec *xml.Decoder) int {
	ln, _ := dec.InputPos()
	return ln
}

// XML parses d into a single entry object keyed by the root element name.
//
// Each element becomes an object holding its attributes under
// ir.AttributesKey, its child elements under their tag names (a repeated
// tag turns into an array) and its last non-blank text run under
// ir.TextKey. An element without child elements collapses to its text.
func XML(d []byte) (*ir.Node, error) {
	if err := WellFormed(d); err != nil {
		return nil, err
	}
	root, err := xmlTree(d)
	if err != nil {
		return nil, err
	}
	res := ir.NewObject()
	res.Set(root.name, root.value())
	return res, nil
}

type xmlElem struct {
	name  string
	attrs []xml.Attr
	items []xmlItem
}

// xmlItem is either a child element or a text run, in document order.
type xmlItem struct {
	elem *xmlElem
	text string
}

// xmlTree builds the element tree with raw tokens so that prefixed names
// stay as written; balance was already checked by WellFormed.
func xmlTree(d []byte) (*xmlElem, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		stack []*xmlElem
		root  *xmlElem
		text  strings.Builder
	)
	flush := func() {
		if len(stack) == 0 {
			text.Reset()
			return
		}
		if s := strings.TrimSpace(text.String()); s != "" {
			top := stack[len(stack)-1]
			top.items = append(top.items, xmlItem{text: s})
		}
		text.Reset()
	}
	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if cd, ok := tok.(xml.CharData); ok {
			text.Write(cd)
			continue
		}
		flush()
		switch t := tok.(type) {
		case xml.StartElement:
			e := &xmlElem{name: qualifiedName(t.Name), attrs: t.Attr}
			if len(stack) == 0 {
				root = e
			} else {
				top := stack[len(stack)-1]
				top.items = append(top.items, xmlItem{elem: e})
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected </%s>", ErrParse, qualifiedName(t.Name))
			}
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return root, nil
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func (e *xmlElem) value() *ir.Node {
	obj := ir.NewObject()
	if len(e.attrs) > 0 {
		attrs := ir.NewObject()
		for _, a := range e.attrs {
			attrs.Set(qualifiedName(a.Name), ir.FromString(a.Value))
		}
		obj.Set(ir.AttributesKey, attrs)
	}
	hasElems := false
	for _, it := range e.items {
		if it.elem == nil {
			obj.Set(ir.TextKey, ir.FromString(it.text))
			continue
		}
		hasElems = true
		v := it.elem.value()
		prev := ir.Get(obj, it.elem.name)
		switch {
		case prev == nil:
			obj.Set(it.elem.name, v)
		case prev.Type == ir.ArrayType:
			prev.Append(v)
		default:
			obj.Set(it.elem.name, ir.FromSlice([]*ir.Node{prev, v}))
		}
	}
	if text := ir.Get(obj, ir.TextKey); !hasElems && text != nil {
		return text
	}
	return obj
}
